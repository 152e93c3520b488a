package planner

import (
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// Gifts returns a copy of the gift records.
func (s *Session) Gifts() []models.Gift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.gifts)
}

// AddGift appends a blank gift record and returns it.
func (s *Session) AddGift() models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := models.NewGift(nextID(s.gifts, func(g models.Gift) int64 { return g.ID }))
	s.gifts = append(slices.Clone(s.gifts), g)
	s.put(slotGifts, s.gifts)
	return g
}

// UpdateGift shallow-merges patch into the gift with the given id.
func (s *Session) UpdateGift(id int64, patch models.GiftPatch) (models.Gift, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.gifts, func(g models.Gift) bool { return g.ID == id })
	if idx < 0 {
		return models.Gift{}, false
	}

	out := slices.Clone(s.gifts)
	out[idx] = patch.Apply(out[idx])
	s.gifts = out
	s.put(slotGifts, s.gifts)
	return out[idx], true
}

// RemoveGift drops the gift with the given id; unknown ids are a no-op.
func (s *Session) RemoveGift(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := slices.DeleteFunc(slices.Clone(s.gifts), func(g models.Gift) bool { return g.ID == id })
	if len(out) == len(s.gifts) {
		return false
	}
	s.gifts = out
	s.put(slotGifts, s.gifts)
	return true
}
