package dllist

// node узел кольца. Один и тот же тип служит и заголовком-стражем,
// встроенным в список, и узлом с данными. Страж опознаётся только
// по адресу, значение в нём никогда не читается и не пишется.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	value T
}

// selfLink замыкает узел на самого себя: так выглядит страж пустого списка.
func (n *node[T]) selfLink() {
	n.prev = n
	n.next = n
}

// linkBefore вставляет n в кольцо непосредственно перед pos.
func (n *node[T]) linkBefore(pos *node[T]) {
	n.prev = pos.prev
	n.next = pos
	pos.prev.next = n
	pos.prev = n
}

// unlink соединяет соседей узла напрямую друг с другом.
func (n *node[T]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
}

func (n *node[T]) cleanup() {
	var zero T
	n.prev = nil
	n.next = nil
	n.value = zero // для упрощения работы GC
}
