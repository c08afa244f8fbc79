// Package testlog вывод ошибок со структурированным контекстом в тестах.
package testlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Printer то, что нужно от *testing.T для вывода.
type Printer interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}

// Log вывод ошибки как информации, тест не падает.
func Log(t Printer, err error) {
	t.Helper()
	t.Log(Render(err, bold))
}

// Error вывод ошибки с пометкой теста как упавшего.
func Error(t Printer, err error) {
	t.Helper()
	t.Error(Render(err, red))
}

// Check ничего не делает и возвращает false для пустой ошибки.
// Иначе выводит ошибку, помечает тест упавшим и возвращает true.
func Check(t Printer, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(Render(err, red))
	return true
}

// Render текст ошибки с выделением и перечислением переменных контекста
// по одной на строку, имена выровнены по ширине.
func Render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)

	vars := contextOf(err)
	if len(vars) == 0 {
		return b.String()
	}

	var width int
	for _, v := range vars {
		width = max(width, len(v.name))
	}

	for _, v := range vars {
		_, _ = fmt.Fprintf(&b, "\n    %s%s%s: %s%v", bold, v.name, reset, strings.Repeat(" ", width-len(v.name)), v.value)
	}

	return b.String()
}

func contextOf(err error) []contextVar {
	d := errors.GetContextDeliverer(err)
	if d == nil {
		return nil
	}

	var c consumer
	d.Deliver(&c)
	return c.vars
}
