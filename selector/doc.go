// Package selector provides [List], a generic ordered collection with exactly
// one item marked as current at any time.
//
// It models single-choice state such as a mode switch with a fixed set of
// named positions:
//
//	modes, _ := selector.New("On", "Off", "Auto")
//	_ = modes.Select(2)
//	modes.Current() // → "Auto"
//
// # Invariants
//
// A List is never empty and its cursor always points at a valid item.
// Constructors reject empty input with [ErrEmptyInput], and every
// index-taking operation rejects a bad index with [ErrIndexOutOfRange]
// before touching any state, so a failed call leaves the list unchanged.
//
// # Editing the item list
//
// [List.Insert] keeps the current item current: inserting at or before the
// cursor moves the cursor forward by one. [List.Remove] only clamps the
// cursor when it would fall past the end. Removing an item before the
// cursor therefore leaves the cursor index untouched and the item after the
// previous current one becomes current:
//
//	l, _ := selector.NewAt(1, "A", "B", "C") // current = "B", index 1
//	_ = l.Insert(0, "X")                     // current = "B", index 2
//	_, _ = l.Remove(0)                       // current = "C", index 2
//
// The only item of a list cannot be removed; see [ErrCannotRemoveLast].
//
// # Concurrency
//
// A List performs no locking. Guard it with a mutex when it is shared
// between goroutines.
package selector
