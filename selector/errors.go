package selector

import "errors"

// Sentinel errors returned by List operations.
//
// Index errors are wrapped with the offending index, so compare with
// [errors.Is]:
//
//	if err := l.Select(7); errors.Is(err, selector.ErrIndexOutOfRange) {
//	    // keep the previous selection
//	}
var (
	// ErrEmptyInput is returned by the constructors when no items are given.
	ErrEmptyInput = errors.New("selector: at least one item is required")

	// ErrIndexOutOfRange is returned when an index violates the bound of the
	// operation: [0, Len()-1] for New/Select/Remove, [0, Len()] for Insert.
	ErrIndexOutOfRange = errors.New("selector: index out of range")

	// ErrCannotRemoveLast is returned by [List.Remove] when the list holds a
	// single item.
	ErrCannotRemoveLast = errors.New("selector: cannot remove the last remaining item")

	// ErrItemNotFound is returned by [List.SelectItem] when no item is equal
	// to the requested one.
	ErrItemNotFound = errors.New("selector: item not found")
)
