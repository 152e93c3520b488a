package planner

import (
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// Guests returns a copy of the guest list.
func (s *Session) Guests() []models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.guests)
}

// AddGuest appends a blank guest and returns it.
func (s *Session) AddGuest() models.Guest {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.NewGuest(nextID(s.guests, func(g models.Guest) int64 { return g.ID }))
	s.guests = append(slices.Clone(s.guests), g)
	s.put(slotGuests, s.guests)
	return g
}

// UpdateGuest shallow-merges patch into the guest with the given id.
// An unknown id leaves the collection untouched.
func (s *Session) UpdateGuest(id int64, patch models.GuestPatch) (models.Guest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.guests, func(g models.Guest) bool { return g.ID == id })
	if idx < 0 {
		return models.Guest{}, false
	}

	out := slices.Clone(s.guests)
	out[idx] = patch.Apply(out[idx])
	s.guests = out
	s.put(slotGuests, s.guests)
	return out[idx], true
}

// RemoveGuest drops the guest with the given id; unknown ids are a no-op.
func (s *Session) RemoveGuest(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.DeleteFunc(slices.Clone(s.guests), func(g models.Guest) bool { return g.ID == id })
	if len(out) == len(s.guests) {
		return false
	}
	s.guests = out
	s.put(slotGuests, s.guests)
	return true
}
