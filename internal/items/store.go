// Package items is the ordered line-item store backing the invoice editor.
// Insertion order is display order. Amount stays consistent with
// unitPrice * quantity through every edit.
package items

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rezonia/invoicemate/internal/model"
)

// RemovalPolicy decides what Remove does when only one item is left. The
// product shipped with both behaviors in different builds, so the choice is
// explicit here rather than hidden in the store.
type RemovalPolicy int

const (
	// KeepLast refuses to remove the final remaining item.
	KeepLast RemovalPolicy = iota
	// AllowEmpty permits removing items down to an empty list.
	AllowEmpty
)

// Store holds the ordered items of one document. It is not safe for
// concurrent use; the editor mutates it from a single logical thread.
type Store struct {
	policy RemovalPolicy
	items  []model.Item
}

// NewStore returns an empty store with the given removal policy.
func NewStore(policy RemovalPolicy) *Store {
	return &Store{policy: policy}
}

// NewSeeded returns a store pre-filled with the sample row new documents
// start with (Sample Item, 100 x 1).
func NewSeeded(policy RemovalPolicy) *Store {
	s := NewStore(policy)
	s.items = append(s.items, model.SampleItem())
	return s
}

// Add appends a new default item (fresh id, empty name, price 0, quantity 1,
// amount 0) and returns it.
func (s *Store) Add() model.Item {
	it := model.NewItem()
	s.items = append(s.items, it)
	return it
}

// SetName updates the name of the matching item. Unknown ids are no-ops.
// Name edits never touch the amount.
func (s *Store) SetName(id, name string) {
	if it := s.find(id); it != nil {
		it.Name = name
	}
}

// SetUnitPrice updates the unit price of the matching item and recomputes
// its amount against the existing quantity. Unknown ids are no-ops.
func (s *Store) SetUnitPrice(id string, price decimal.Decimal) {
	if it := s.find(id); it != nil {
		it.SetUnitPrice(price)
	}
}

// SetQuantity updates the quantity of the matching item and recomputes its
// amount against the existing unit price. Unknown ids are no-ops.
func (s *Store) SetQuantity(id string, quantity int64) {
	if it := s.find(id); it != nil {
		it.SetQuantity(quantity)
	}
}

// Remove deletes the item with the given id and reports whether anything was
// removed. Under KeepLast the final item survives and Remove returns false.
// Unknown ids return false with the list unchanged.
func (s *Store) Remove(id string) bool {
	if s.policy == KeepLast && len(s.items) <= 1 {
		return false
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns a copy of the item with the given id.
func (s *Store) Get(id string) (model.Item, bool) {
	if it := s.find(id); it != nil {
		return *it, true
	}
	return model.Item{}, false
}

// Items returns a copy of the list in display order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the item count.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) find(id string) *model.Item {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// ParsePrice coerces raw numeric input to a price, falling back to 0 on
// anything unparsable. Coercion lives at the input boundary, not in the
// store.
func ParsePrice(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ParseQuantity coerces raw numeric input to a quantity, falling back to 1
// on anything unparsable or below one.
func ParseQuantity(raw string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
