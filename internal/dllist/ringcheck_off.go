//go:build !dllistcheck

package dllist

//go:inline
func checkNotEmpty[T any](l *List[T], op string) {}

//go:inline
func checkNotEnd[T any](l *List[T], n *node[T], op string) {}

//go:inline
func checkRing[T any](l *List[T]) {}
