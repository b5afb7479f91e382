package cartstore

import (
	"encoding/json"
	"log"

	"github.com/vchhajed/chhajedfoodproducts-sub000/internal/models"
)

// storageKey is the single slot the serialized cart lives under.
const storageKey = "cfp_cart"

// Store owns the active cart. It is the sole mutator of the item list; every
// other component reads through its accessors. All operations run on the
// caller's goroutine in response to discrete user actions.
type Store struct {
	storage     Storage
	items       []models.CartItem
	subscribers []func()
}

// New hydrates the cart from storage. A missing or corrupt entry yields an
// empty cart rather than an error.
func New(storage Storage) *Store {
	s := &Store{storage: storage}
	data, err := storage.Load(storageKey)
	if err != nil {
		log.Println("[CART] [WARN] cart hydration failed:", err)
		return s
	}
	if len(data) == 0 {
		return s
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Println("[CART] [WARN] discarding corrupt stored cart:", err)
		return s
	}
	s.items = items
	return s
}

// Subscribe registers a change listener invoked after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

// AddItem merges into an existing line when the id is already present,
// keeping its position; otherwise the item is appended at the end.
// A quantity below 1 counts as 1.
func (s *Store) AddItem(item models.CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += quantity
			s.changed()
			return
		}
	}
	item.Quantity = quantity
	s.items = append(s.items, item)
	s.changed()
}

// UpdateQuantity sets the line's quantity, removing the line when the new
// quantity drops below 1. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if quantity < 1 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		s.changed()
		return
	}
}

// RemoveItem deletes the line if present; no-op otherwise.
func (s *Store) RemoveItem(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.changed()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.items = nil
	s.changed()
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalItemCount is the sum of all line quantities.
func (s *Store) TotalItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// TotalPrice is the cart subtotal.
func (s *Store) TotalPrice() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *Store) changed() {
	s.persist()
	for _, fn := range s.subscribers {
		fn()
	}
}

// persist writes the full item list to storage. Failures are swallowed: the
// in-memory cart keeps working for the rest of the session.
func (s *Store) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Println("[CART] [WARN] cart serialization failed:", err)
		return
	}
	if err := s.storage.Save(storageKey, data); err != nil {
		log.Println("[CART] [WARN] cart persistence failed:", err)
	}
}
