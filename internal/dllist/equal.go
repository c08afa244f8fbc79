package dllist

// Equal проверка списков на равенство: одинаковая длина и попарно равные
// значения в порядке обхода.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc то же, что и Equal, но с пользовательским сравнением значений.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}

	a.init()
	b.init()
	for x, y := a.root.next, b.root.next; x != &a.root; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}

	return true
}
