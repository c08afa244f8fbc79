package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"

	"github.com/sirkon/gcontainers/internal/dllist"
)

type listCommand struct {
	Limit int `help:"Limit the length of the list, 0 means no limit." default:"0"`
}

func (c *listCommand) Run(rc *runContext) error {
	opts := []dllist.Option{dllist.WithLogger(rc.logger)}
	if c.Limit > 0 {
		opts = append(opts, dllist.LengthLimit(c.Limit))
	}

	a, err := dllist.New[int](opts...)
	if err != nil {
		return errors.Wrap(err, "create list")
	}

	w := rc.out
	fmt.Fprintln(w, "Create an empty list<int>:")
	printList(w, "A: ", a)

	fmt.Fprintln(w, "Push 4 values:")
	for i := 1; i <= 4; i++ {
		report(w, a.PushBack(i))
	}
	printList(w, "A: ", a)

	fmt.Fprintln(w, "Insert a value at the end:")
	insert(w, a, a.End(), 5)
	printList(w, "A: ", a)

	fmt.Fprintln(w, "Insert a value at the start:")
	insert(w, a, a.Begin(), -1)
	printList(w, "A: ", a)

	fmt.Fprintln(w, "Insert a value in the middle:")
	insert(w, a, advance(a, 2), -2)
	printList(w, "A: ", a)

	fmt.Fprintln(w, "Erase a value:")
	if pos := advance(a, 3); pos != a.End() {
		after := a.Erase(pos)
		printList(w, "A: ", a)
		if after != a.End() {
			fmt.Fprintln(w, "Erased before:", after.Value())
		}
	} else {
		fmt.Fprintln(w, "Nothing to erase")
	}

	fmt.Fprintln(w, "Copy list:")
	b := a.Clone()
	printList(w, "B: ", b)
	printList(w, "A: ", a)

	fmt.Fprintln(w, "Compare the copy and the original:")
	equal := dllist.Equal(a, b)
	fmt.Fprintf(w, "Equal: %t. Not equal: %t\n", equal, !equal)

	return nil
}

func insert(w io.Writer, l *dllist.List[int], pos dllist.Iterator[int], v int) {
	_, err := l.Insert(pos, v)
	report(w, err)
}

// report сообщает об отказе вставки из-за ограничения длины, сценарий
// при этом продолжается.
func report(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(w, "Rejected:", err)
}

// advance позиция на n шагов вперёд от начала, но не дальше End().
func advance(l *dllist.List[int], n int) dllist.Iterator[int] {
	it := l.Begin()
	for i := 0; i < n && it != l.End(); i++ {
		it = it.Next()
	}

	return it
}

func printList(w io.Writer, prefix string, l *dllist.List[int]) {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('{')
	for it := l.CBegin(); it != l.CEnd(); it = it.Next() {
		if it != l.CBegin() {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, it.Value())
	}
	fmt.Fprintf(&b, "} (size: %d)", l.Len())

	fmt.Fprintln(w, b.String())
}
