// Package protocol implements the plaintext wire protocol: requests are
// single newline-terminated lines of the form "COMMAND arg1 arg2 ...",
// responses are the exact strings the legacy clients expect. Parsing is
// kept separate from command execution so each stage can be tested on
// its own.
package protocol

import "strings"

// Command tokens recognized by the dispatcher. The command token on the
// wire is case-insensitive; Parse normalizes it to these values.
const (
	CmdLogin          = "LOGIN"
	CmdRegister       = "REGISTER"
	CmdGetFlights     = "GET_FLIGHTS"
	CmdGetSeats       = "GET_SEATS"
	CmdBookSeat       = "BOOK_SEAT"
	CmdGetUser        = "GET_USER"
	CmdUpdateUser     = "UPDATE_USER"
	CmdChangePassword = "CHANGE_PASSWORD"
)

// Request is one parsed client line: the upper-cased command token and
// its raw argument tokens. Argument arity and types are validated by the
// individual handlers, not here.
type Request struct {
	Command string
	Args    []string
}

// Parse splits a trimmed request line on whitespace. It returns false
// when the line contains no tokens at all.
func Parse(line string) (Request, bool) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Request{}, false
	}
	return Request{
		Command: strings.ToUpper(parts[0]),
		Args:    parts[1:],
	}, true
}
