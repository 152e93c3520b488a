package planner

import (
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// Tables returns a copy of the table list.
func (s *Session) Tables() []models.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tables)
}

// AddTable appends a blank table.
func (s *Session) AddTable() models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.NewTable()
	s.tables = append(slices.Clone(s.tables), t)
	s.put(slotTables, s.tables)
	return t
}

// UpdateTable shallow-merges patch into the table at index.
func (s *Session) UpdateTable(index int, patch models.TablePatch) (models.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tables) {
		return models.Table{}, false
	}

	out := slices.Clone(s.tables)
	out[index] = patch.Apply(out[index])
	s.tables = out
	s.put(slotTables, s.tables)
	return out[index], true
}

// RemoveTable drops the table at index. Seats pointing at its name are
// left as-is; they become orphaned references.
func (s *Session) RemoveTable(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.tables) {
		return false
	}
	s.tables = slices.Delete(slices.Clone(s.tables), index, index+1)
	s.put(slotTables, s.tables)
	return true
}

// Seats returns a copy of the seat assignments.
func (s *Session) Seats() []models.Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.seats)
}

// AddSeat appends a blank seat assignment and returns it.
func (s *Session) AddSeat() models.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := models.NewSeat(nextID(s.seats, func(st models.Seat) int64 { return st.ID }))
	s.seats = append(slices.Clone(s.seats), seat)
	s.put(slotSeats, s.seats)
	return seat
}

// UpdateSeat shallow-merges patch into the seat with the given id.
func (s *Session) UpdateSeat(id int64, patch models.SeatPatch) (models.Seat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.seats, func(st models.Seat) bool { return st.ID == id })
	if idx < 0 {
		return models.Seat{}, false
	}

	out := slices.Clone(s.seats)
	out[idx] = patch.Apply(out[idx])
	s.seats = out
	s.put(slotSeats, s.seats)
	return out[idx], true
}

// RemoveSeat drops the seat with the given id; unknown ids are a no-op.
func (s *Session) RemoveSeat(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.DeleteFunc(slices.Clone(s.seats), func(st models.Seat) bool { return st.ID == id })
	if len(out) == len(s.seats) {
		return false
	}
	s.seats = out
	s.put(slotSeats, s.seats)
	return true
}
