package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("command and args", func(t *testing.T) {
		req, ok := Parse("BOOK_SEAT 1 12A")
		require.True(t, ok)
		assert.Equal(t, CmdBookSeat, req.Command)
		assert.Equal(t, []string{"1", "12A"}, req.Args)
	})

	t.Run("command is case-insensitive", func(t *testing.T) {
		req, ok := Parse("login alice secret123")
		require.True(t, ok)
		assert.Equal(t, CmdLogin, req.Command)
		assert.Equal(t, []string{"alice", "secret123"}, req.Args)
	})

	t.Run("argument case is preserved", func(t *testing.T) {
		req, ok := Parse("book_seat 1 12a")
		require.True(t, ok)
		assert.Equal(t, []string{"1", "12a"}, req.Args)
	})

	t.Run("collapses repeated whitespace", func(t *testing.T) {
		req, ok := Parse("  GET_SEATS   7 ")
		require.True(t, ok)
		assert.Equal(t, CmdGetSeats, req.Command)
		assert.Equal(t, []string{"7"}, req.Args)
	})

	t.Run("no args", func(t *testing.T) {
		req, ok := Parse("GET_FLIGHTS")
		require.True(t, ok)
		assert.Equal(t, CmdGetFlights, req.Command)
		assert.Empty(t, req.Args)
	})

	t.Run("empty line", func(t *testing.T) {
		_, ok := Parse("")
		assert.False(t, ok)
	})

	t.Run("whitespace-only line", func(t *testing.T) {
		_, ok := Parse("   \t ")
		assert.False(t, ok)
	})
}
