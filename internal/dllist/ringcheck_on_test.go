//go:build dllistcheck

package dllist

import (
	"testing"
)

func TestRingCheckPreconditions(t *testing.T) {
	tests := []struct {
		name string
		op   func(l *List[int])
	}{
		{name: "pop front on empty", op: func(l *List[int]) { l.PopFront() }},
		{name: "pop back on empty", op: func(l *List[int]) { l.PopBack() }},
		{name: "front on empty", op: func(l *List[int]) { l.Front() }},
		{name: "erase end", op: func(l *List[int]) { l.Erase(l.End()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("precondition violation must panic in checked build")
				}
			}()

			var l List[int]
			tt.op(&l)
		})
	}
}

func TestRingCheckCorruption(t *testing.T) {
	l := From(1, 2, 3)
	l.root.next.next.prev = &l.root

	defer func() {
		if r := recover(); r == nil {
			t.Error("corrupted ring must be detected in checked build")
		}
	}()
	_ = l.PushBack(4)
}
