// Package items holds the in-memory item list and keeps it in step with the
// backing store. Every mutation is saved before the call returns.
package items

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/budget/internal/model"
)

var (
	ErrEmptyName = errors.New("empty name")
	ErrNotFound  = errors.New("item not found")
	ErrDuplicate = errors.New("item already exists")
)

// Store is the persistence the repository writes through to.
type Store interface {
	Load() ([]model.Item, error)
	Save([]model.Item) error
}

// Repository owns the item sequence. Lookups are linear scans in insertion
// order; names are trimmed and compared exactly.
type Repository struct {
	store Store
	items []model.Item
}

// Open loads the current items from store.
func Open(store Store) (*Repository, error) {
	items, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return &Repository{store: store, items: items}, nil
}

// Exists reports whether any item is called name.
func (r *Repository) Exists(name string) bool {
	return r.index(name) >= 0
}

// Register appends a new item. Names must be unique.
func (r *Repository) Register(name string, amount float64) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, ErrEmptyName
	}
	if r.Exists(name) {
		return model.Item{}, ErrDuplicate
	}
	it := model.Item{Name: name, Amount: amount}
	next := append(r.Items(), it)
	if err := r.commit(next); err != nil {
		return model.Item{}, err
	}
	return it, nil
}

// Search returns the first item called name.
func (r *Repository) Search(name string) (model.Item, bool) {
	i := r.index(name)
	if i < 0 {
		return model.Item{}, false
	}
	return r.items[i], true
}

// Edit replaces the amount of the first item called name.
func (r *Repository) Edit(name string, amount float64) (model.Item, error) {
	i := r.index(name)
	if i < 0 {
		return model.Item{}, ErrNotFound
	}
	next := r.Items()
	next[i].Amount = amount
	if err := r.commit(next); err != nil {
		return model.Item{}, err
	}
	return next[i], nil
}

// Delete removes every item called name and returns how many went.
// Nothing is written when there is no match.
func (r *Repository) Delete(name string) (int, error) {
	name = strings.TrimSpace(name)
	next := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if it.Name != name {
			next = append(next, it)
		}
	}
	removed := len(r.items) - len(next)
	if removed == 0 {
		return 0, nil
	}
	if err := r.commit(next); err != nil {
		return 0, err
	}
	return removed, nil
}

// Items returns a copy of the current sequence.
func (r *Repository) Items() []model.Item {
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Len is the number of items.
func (r *Repository) Len() int { return len(r.items) }

// Total sums all amounts.
func (r *Repository) Total() float64 {
	var sum float64
	for _, it := range r.items {
		sum += it.Amount
	}
	return sum
}

func (r *Repository) index(name string) int {
	name = strings.TrimSpace(name)
	for i, it := range r.items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// commit saves next and only then swaps it in, so a failed write leaves the
// in-memory list matching the file.
func (r *Repository) commit(next []model.Item) error {
	if err := r.store.Save(next); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	r.items = next
	return nil
}
