package planner

import (
	"slices"

	"github.com/hitchly/planner-api/internal/models"
)

// Vendors returns a deep copy of the vendor book.
func (s *Session) Vendors() models.VendorBook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vendors.Clone()
}

// AddVendorEntry appends a blank entry under the given vendor type,
// creating the type's list if it does not exist yet. Types outside
// Setup.VendorTypes are accepted; the vocabulary is advisory.
func (s *Session) AddVendorEntry(vendorType string) models.VendorEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.vendors.Clone()
	entry := models.VendorEntry{}
	book[vendorType] = append(book[vendorType], entry)
	s.vendors = book
	s.put(slotVendors, s.vendors)
	return entry
}

// UpdateVendorEntry shallow-merges patch into the entry at index under
// vendorType. Unknown type or out-of-range index is a no-op.
func (s *Session) UpdateVendorEntry(vendorType string, index int, patch models.VendorPatch) (models.VendorEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.vendors[vendorType]
	if !ok || index < 0 || index >= len(entries) {
		return models.VendorEntry{}, false
	}

	book := s.vendors.Clone()
	book[vendorType][index] = patch.Apply(book[vendorType][index])
	s.vendors = book
	s.put(slotVendors, s.vendors)
	return book[vendorType][index], true
}

// RemoveVendorEntry drops the entry at index under vendorType.
func (s *Session) RemoveVendorEntry(vendorType string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.vendors[vendorType]
	if !ok || index < 0 || index >= len(entries) {
		return false
	}

	book := s.vendors.Clone()
	book[vendorType] = slices.Delete(book[vendorType], index, index+1)
	s.vendors = book
	s.put(slotVendors, s.vendors)
	return true
}
