package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/aktesher/flight-booking-server/internal/model"
)

// memSeat carries its own lock so that concurrent booking attempts
// contend only when they target the same seat.
type memSeat struct {
	mu   sync.Mutex
	free bool
}

// MemoryInventory is an in-process InventoryStore used by the tests and
// by storeless development runs. Instead of a conditional UPDATE it uses
// a per-seat mutex around the check-then-set, which gives the same
// at-most-one-winner guarantee within a single process: attempts on the
// same seat serialize on that seat's lock while unrelated seats proceed
// in parallel.
type MemoryInventory struct {
	mu      sync.RWMutex
	flights map[int]model.Flight
	seats   map[int]map[string]*memSeat
}

// NewMemoryInventory returns an empty MemoryInventory.
func NewMemoryInventory() *MemoryInventory {
	return &MemoryInventory{
		flights: make(map[int]model.Flight),
		seats:   make(map[int]map[string]*memSeat),
	}
}

// AddFlight provisions a flight with the given free seats. It stands in
// for the external provisioning process that populates the real store.
func (m *MemoryInventory) AddFlight(f model.Flight, seatLabels ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flights[f.ID] = f
	seats := make(map[string]*memSeat, len(seatLabels))
	for _, label := range seatLabels {
		seats[label] = &memSeat{free: true}
	}
	m.seats[f.ID] = seats
}

// ListFlights implements InventoryStore.
func (m *MemoryInventory) ListFlights(ctx context.Context) ([]model.Flight, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	flights := make([]model.Flight, 0, len(m.flights))
	for _, f := range m.flights {
		flights = append(flights, f)
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	return flights, nil
}

// ListFreeSeats implements InventoryStore.
func (m *MemoryInventory) ListFreeSeats(ctx context.Context, flightID int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	labels := make([]string, 0)
	for label, s := range m.seats[flightID] {
		s.mu.Lock()
		free := s.free
		s.mu.Unlock()
		if free {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels, nil
}

// ConditionalBookSeat implements InventoryStore. The check and the set
// happen under the seat's own lock; a missing flight or seat mutates
// nothing and locks nothing beyond the lookup.
func (m *MemoryInventory) ConditionalBookSeat(ctx context.Context, flightID int, seat string) (bool, error) {
	m.mu.RLock()
	s := m.seats[flightID][seat]
	m.mu.RUnlock()
	if s == nil {
		return false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.free {
		return false, nil
	}
	s.free = false
	return true, nil
}

// FlightExists implements InventoryStore.
func (m *MemoryInventory) FlightExists(ctx context.Context, flightID int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.flights[flightID]
	return ok, nil
}

// SeatExists implements InventoryStore.
func (m *MemoryInventory) SeatExists(ctx context.Context, flightID int, seat string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.seats[flightID][seat]
	return ok, nil
}
