package selector_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/hasbyte1/go-selector/selector"
)

// FuzzOperations drives a List through an arbitrary sequence of operations
// and checks after every step that the list is non-empty, the cursor is in
// range and failed calls left the state untouched.
//
// Each pair of bytes in ops is (operation, argument); indices are derived
// from the argument so that both valid and out-of-range values occur.
//
// Run with: go test -fuzz=FuzzOperations ./selector/
func FuzzOperations(f *testing.F) {
	f.Add(uint8(3), []byte{})
	f.Add(uint8(1), []byte{0, 0, 4, 0})
	f.Add(uint8(4), []byte{0, 3, 2, 0, 3, 0, 3, 1, 1, 9})
	f.Add(uint8(2), []byte{3, 1, 3, 0, 3, 0, 5, 200})

	f.Fuzz(func(t *testing.T, size uint8, ops []byte) {
		n := int(size%8) + 1
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		l := selector.MustNew(items...)
		next := n

		for i := 0; i+1 < len(ops); i += 2 {
			before := l.All()
			cursor := l.Index()
			current := l.Current()
			arg := int(ops[i+1]%16) - 2

			var err error
			switch ops[i] % 6 {
			case 0:
				err = l.Select(arg)
			case 1:
				l.Append(next)
				next++
				if l.Index() != cursor {
					t.Fatalf("Append moved cursor %d → %d", cursor, l.Index())
				}
			case 2:
				err = l.Insert(arg, next)
				next++
				if err == nil && l.Current() != current {
					t.Fatalf("Insert(%d) changed current item %d → %d", arg, current, l.Current())
				}
			case 3:
				var removed int
				removed, err = l.Remove(arg)
				if err == nil {
					if removed != before[arg] {
						t.Fatalf("Remove(%d) returned %d, want %d", arg, removed, before[arg])
					}
					want := min(cursor, l.Len()-1)
					if l.Index() != want {
						t.Fatalf("Remove(%d) cursor = %d, want %d", arg, l.Index(), want)
					}
				}
			case 4:
				err = l.SelectItem(arg)
			case 5:
				l.Step(arg)
			}

			if err != nil {
				if !errors.Is(err, selector.ErrIndexOutOfRange) &&
					!errors.Is(err, selector.ErrCannotRemoveLast) &&
					!errors.Is(err, selector.ErrItemNotFound) {
					t.Fatalf("unexpected error: %v", err)
				}
				if l.Index() != cursor || !slices.Equal(l.All(), before) {
					t.Fatalf("failed op %d mutated the list: %v", ops[i]%6, l)
				}
			}
			if l.Len() == 0 || l.Index() < 0 || l.Index() >= l.Len() {
				t.Fatalf("invariant broken: %v", l)
			}
		}
	})
}
