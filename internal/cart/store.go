package cart

import (
	"sync"

	"github.com/shopfast/storefront-go/internal/api"
)

// Entry is one line of the cart. Name and price are copied from the product
// at add time, so totals stay stable even if catalog prices change while the
// cart is open.
type Entry struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// Store is the sole owner of cart state. Every mutation goes through one of
// its methods; everything else sees snapshots. The cart lives only for the
// session, there is no persistence.
type Store struct {
	mu      sync.Mutex
	entries map[string]*Entry
	order   []string // product ids in insertion order, drives display order
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// AddItem adds one unit of the product, merging with an existing entry for
// the same product id.
func (s *Store) AddItem(p api.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[p.ID]; ok {
		e.Quantity++
		return
	}
	s.entries[p.ID] = &Entry{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1}
	s.order = append(s.order, p.ID)
}

// RemoveItem deletes the entry if present; removing an absent id is a no-op.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// SetQuantity replaces the quantity of an existing entry. Zero or negative
// removes the entry. An unknown product id is silently ignored.
func (s *Store) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	if e, ok := s.entries[productID]; ok {
		e.Quantity = quantity
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*Entry)
	s.order = nil
}

// ItemCount is the sum of quantities, not the number of entries; it drives
// the header badge.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.entries {
		n += e.Quantity
	}
	return n
}

func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, e := range s.entries {
		total += e.Price * float64(e.Quantity)
	}
	return total
}

// Entries returns a copy of the cart in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.entries[id])
	}
	return out
}

func (s *Store) removeLocked(productID string) {
	if _, ok := s.entries[productID]; !ok {
		return
	}
	delete(s.entries, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
