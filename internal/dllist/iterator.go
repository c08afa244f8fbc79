package dllist

// Iterator позиция в списке: ссылка на узел с данными или на стража.
// Не владеет узлом и становится недействительной после его удаления.
// Позиции сравниваются через ==, равенство означает один и тот же узел.
type Iterator[T any] struct {
	n *node[T]
}

// Value значение элемента.
// Позиция не должна указывать на стража, т.е. быть равной End().
func (it Iterator[T]) Value() T {
	return it.n.value
}

// Ptr указатель на значение элемента для изменения на месте.
func (it Iterator[T]) Ptr() *T {
	return &it.n.value
}

// Set замена значения элемента.
func (it Iterator[T]) Set(v T) {
	it.n.value = v
}

// Next позиция следующего узла.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Prev позиция предыдущего узла. Для End() это последний элемент списка.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}

// Const та же позиция, но только на чтение.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator позиция в списке, не дающая изменять значения.
type ConstIterator[T any] struct {
	n *node[T]
}

// Value значение элемента.
func (it ConstIterator[T]) Value() T {
	return it.n.value
}

// Next позиция следующего узла.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

// Prev позиция предыдущего узла.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.prev}
}

// ReverseIterator позиция для обхода списка с конца.
// Ссылается на элемент, предшествующий базовой позиции, поэтому
// RBegin() строится из End(), а REnd() из Begin().
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// Value значение элемента перед базовой позицией.
func (it ReverseIterator[T]) Value() T {
	return it.base.n.prev.value
}

// Ptr указатель на значение элемента перед базовой позицией.
func (it ReverseIterator[T]) Ptr() *T {
	return &it.base.n.prev.value
}

// Next шаг к началу списка.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Prev()}
}

// Prev шаг к концу списка.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: it.base.Next()}
}

// Base базовая позиция.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.base
}

// Const та же позиция, но только на чтение.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Const()}
}

// ConstReverseIterator позиция для обхода списка с конца только на чтение.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// Value значение элемента перед базовой позицией.
func (it ConstReverseIterator[T]) Value() T {
	return it.base.n.prev.value
}

// Next шаг к началу списка.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Prev()}
}

// Prev шаг к концу списка.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Next()}
}

// Base базовая позиция.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] {
	return it.base
}
