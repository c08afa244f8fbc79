package testlog

import (
	"github.com/sirkon/errors"
)

var _ errors.ErrorContextConsumer = &consumer{}

type contextVar struct {
	name  string
	value any
}

// consumer собирает переменные контекста ошибки в порядке их добавления.
type consumer struct {
	vars []contextVar
}

func (c *consumer) add(name string, value any) {
	c.vars = append(c.vars, contextVar{name: name, value: value})
}

func (c *consumer) Bool(name string, value bool)       { c.add(name, value) }
func (c *consumer) Int(name string, value int)         { c.add(name, value) }
func (c *consumer) Int8(name string, value int8)       { c.add(name, value) }
func (c *consumer) Int16(name string, value int16)     { c.add(name, value) }
func (c *consumer) Int32(name string, value int32)     { c.add(name, value) }
func (c *consumer) Int64(name string, value int64)     { c.add(name, value) }
func (c *consumer) Uint(name string, value uint)       { c.add(name, value) }
func (c *consumer) Uint8(name string, value uint8)     { c.add(name, value) }
func (c *consumer) Uint16(name string, value uint16)   { c.add(name, value) }
func (c *consumer) Uint32(name string, value uint32)   { c.add(name, value) }
func (c *consumer) Uint64(name string, value uint64)   { c.add(name, value) }
func (c *consumer) Float32(name string, value float32) { c.add(name, value) }
func (c *consumer) Float64(name string, value float64) { c.add(name, value) }
func (c *consumer) String(name string, value string)   { c.add(name, value) }
func (c *consumer) Any(name string, value any)         { c.add(name, value) }
