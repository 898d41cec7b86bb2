// Package source provides ready-made Source implementations for the virtual
// package: an in-memory slice with change notification, and a JSON Lines
// file on a billy filesystem.
package source

import (
	"context"
	"slices"

	platformerrors "github.com/jmgilman/go/errors"
)

// Slice is an in-memory source over a Go slice. It supports change
// notification: every mutation through Append, SetItem, or RemoveAt notifies
// registered listeners, so a virtual.List backed by a Slice invalidates its
// cache automatically.
//
// A Slice is not safe for concurrent use, matching the contract of the list
// it feeds.
type Slice[T comparable] struct {
	items     []T
	listeners map[int]func()
	nextID    int
}

// NewSlice creates a Slice source holding the given items. The items are
// copied; later changes to the caller's slice are not observed.
func NewSlice[T comparable](items ...T) *Slice[T] {
	return &Slice[T]{
		items:     slices.Clone(items),
		listeners: make(map[int]func()),
	}
}

// Count returns the number of items.
func (s *Slice[T]) Count(_ context.Context) (int, error) {
	return len(s.items), nil
}

// FetchRange returns up to count items starting at start. A start at or
// beyond the end of the slice returns no items.
func (s *Slice[T]) FetchRange(_ context.Context, start, count int) ([]T, error) {
	if start < 0 || start >= len(s.items) || count <= 0 {
		return nil, nil
	}
	end := min(start+count, len(s.items))
	return slices.Clone(s.items[start:end]), nil
}

// IndexOf returns the index of item, or -1 if absent.
func (s *Slice[T]) IndexOf(_ context.Context, item T) (int, error) {
	return slices.Index(s.items, item), nil
}

// OnChange registers fn to run after every mutation. The returned cancel
// function removes the registration.
func (s *Slice[T]) OnChange(fn func()) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// Listeners returns the number of registered change listeners.
func (s *Slice[T]) Listeners() int {
	return len(s.listeners)
}

// Append adds items to the end of the slice and notifies listeners.
func (s *Slice[T]) Append(items ...T) {
	s.items = append(s.items, items...)
	s.notify()
}

// SetItem replaces the item at index and notifies listeners.
func (s *Slice[T]) SetItem(index int, item T) error {
	if index < 0 || index >= len(s.items) {
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "index %d out of range [0,%d)", index, len(s.items))
	}
	s.items[index] = item
	s.notify()
	return nil
}

// RemoveAt deletes the item at index and notifies listeners.
func (s *Slice[T]) RemoveAt(index int) error {
	if index < 0 || index >= len(s.items) {
		return platformerrors.Newf(platformerrors.CodeInvalidInput, "index %d out of range [0,%d)", index, len(s.items))
	}
	s.items = slices.Delete(s.items, index, index+1)
	s.notify()
	return nil
}

func (s *Slice[T]) notify() {
	for _, fn := range s.listeners {
		fn()
	}
}
