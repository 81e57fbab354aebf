package selector

import (
	"fmt"
	"slices"
)

// List is an ordered, non-empty sequence of items with a cursor marking the
// current item. Duplicates are allowed.
//
// The zero value is not usable; create lists with [New] or [NewAt].
type List[T comparable] struct {
	items  []T
	cursor int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from items (copied) with the first item current.
// Returns ErrEmptyInput when items is empty.
func New[T comparable](items ...T) (*List[T], error) {
	return NewAt(0, items...)
}

// NewAt creates a List from items (copied) with items[start] current.
// Returns ErrEmptyInput when items is empty and ErrIndexOutOfRange when start
// is not a valid index.
func NewAt[T comparable](start int, items ...T) (*List[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	if start < 0 || start >= len(items) {
		return nil, outOfRange(start, len(items))
	}
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst, cursor: start}, nil
}

// MustNew is like [New] but panics on error.
func MustNew[T comparable](items ...T) *List[T] {
	return MustNewAt(0, items...)
}

// MustNewAt is like [NewAt] but panics on error.
func MustNewAt[T comparable](start int, items ...T) *List[T] {
	l, err := NewAt(start, items...)
	if err != nil {
		panic(err)
	}
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Current returns the current item.
func (l *List[T]) Current() T { return l.items[l.cursor] }

// Index returns the index of the current item.
func (l *List[T]) Index() int { return l.cursor }

// All returns a copy of the items in order.
func (l *List[T]) All() []T { return slices.Clone(l.items) }

// Len returns the number of items. It is always at least 1.
func (l *List[T]) Len() int { return len(l.items) }

// Get returns the item at index together with a presence flag.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// IndexOf returns the index of the first item equal to item, or -1.
func (l *List[T]) IndexOf(item T) int { return slices.Index(l.items, item) }

// String renders the items, the current index and the current item.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return fmt.Sprintf("items=%v, current_index=%d, current=%v", l.items, l.cursor, l.Current())
}

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Select makes the item at index current.
func (l *List[T]) Select(index int) error {
	if index < 0 || index >= len(l.items) {
		return outOfRange(index, len(l.items))
	}
	l.cursor = index
	return nil
}

// SelectItem makes the first item equal to item current.
// Returns ErrItemNotFound when no item matches.
func (l *List[T]) SelectItem(item T) error {
	i := l.IndexOf(item)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrItemNotFound, item)
	}
	l.cursor = i
	return nil
}

// Step moves the cursor by delta positions, wrapping around at both ends,
// and returns the new current item.
func (l *List[T]) Step(delta int) T {
	n := len(l.items)
	delta %= n
	l.cursor = ((l.cursor+delta)%n + n) % n
	return l.items[l.cursor]
}

// ─────────────────────────────────────────────────────────────────────────────
// Editing
// ─────────────────────────────────────────────────────────────────────────────

// Append adds item after the last item. The cursor does not move.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

// Insert places item at index, shifting later items right. index may equal
// Len(), which appends. Inserting at or before the cursor advances the cursor
// so the current item stays current.
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return outOfRange(index, len(l.items))
	}
	l.items = slices.Insert(l.items, index, item)
	if index <= l.cursor {
		l.cursor++
	}
	return nil
}

// Remove deletes and returns the item at index.
//
// The cursor is only clamped when it would point past the end; removing an
// item before the cursor leaves the cursor index as is, so the following
// item becomes current. The last remaining item cannot be removed.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, outOfRange(index, len(l.items))
	}
	if len(l.items) == 1 {
		return zero, ErrCannotRemoveLast
	}
	removed := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	return removed, nil
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}
