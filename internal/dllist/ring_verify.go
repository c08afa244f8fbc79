package dllist

import (
	"github.com/sirkon/errors"
)

// verifyRing проверяет, что связи списка образуют ровно одно кольцо
// из l.size узлов и стража, и что все обратные ссылки согласованы.
func verifyRing[T any](l *List[T]) error {
	if l.root.next == nil || l.root.prev == nil {
		if l.root.next != l.root.prev {
			return errors.New("half-initialized sentinel")
		}
		if l.size != 0 {
			return errors.New("uninitialized sentinel of non-empty list").Int("size", l.size)
		}

		return nil
	}

	if err := walkRing(l, func(n *node[T]) *node[T] { return n.next }, func(n *node[T]) *node[T] { return n.prev }); err != nil {
		return errors.Wrap(err, "walk forward")
	}

	if err := walkRing(l, func(n *node[T]) *node[T] { return n.prev }, func(n *node[T]) *node[T] { return n.next }); err != nil {
		return errors.Wrap(err, "walk backward")
	}

	return nil
}

func walkRing[T any](l *List[T], step, back func(*node[T]) *node[T]) error {
	cur := &l.root
	for i := 0; i < l.size; i++ {
		nxt := step(cur)
		switch {
		case nxt == nil:
			return errors.New("broken link").Int("position", i).Int("size", l.size)
		case nxt == &l.root:
			return errors.New("ring is shorter than the list size").Int("position", i).Int("size", l.size)
		case back(nxt) != cur:
			return errors.New("back link mismatch").Int("position", i).Int("size", l.size)
		}
		cur = nxt
	}

	if step(cur) != &l.root {
		return errors.New("ring is longer than the list size").Int("size", l.size)
	}
	if back(&l.root) != cur {
		return errors.New("sentinel back link mismatch").Int("size", l.size)
	}

	return nil
}
