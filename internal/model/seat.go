package model

// Seat describes a single seat on a flight as stored in the `seats`
// table. A seat is identified by the pair (flight id, seat label);
// the protocol never exposes a surrogate key. IsFree transitions
// from true to false exactly once on a successful booking and never
// back: no cancellation command exists.
//
// Fields:
//  FlightID – flight to which this seat belongs (seats.plane_id).
//  Label    – seat label such as "12A" (seats.number).
//  IsFree   – whether the seat is still available.
type Seat struct {
	FlightID int    // seats.plane_id
	Label    string // seats.number
	IsFree   bool   // seats.is_free
}
