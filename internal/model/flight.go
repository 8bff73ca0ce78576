package model

import "time"

// Flight describes a scheduled flight as stored in the `planes`
// table. Flights are provisioned externally and are read-only to
// this server: the booking flow never creates, updates or removes
// them.
//
// Fields:
//  ID   – primary key identifier of the flight.
//  From – origin city or airport name.
//  To   – destination city or airport name.
//  Date – departure date.
type Flight struct {
	ID   int       // planes.id
	From string    // planes.from
	To   string    // planes.to
	Date time.Time // planes.date
}
