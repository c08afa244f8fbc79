package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"

	"github.com/sirkon/gcontainers/internal/bitset"
)

type bitSetCommand struct {
	A     string `name:"a" help:"Elements of the set a separated by spaces." default:""`
	Limit uint64 `help:"Elements must be less than this limit, 0 means the default limit." default:"0"`
}

func (c *bitSetCommand) Run(rc *runContext) error {
	opts := []bitset.Option{bitset.WithLogger(rc.logger)}
	if c.Limit > 0 {
		opts = append(opts, bitset.BitLimit(c.Limit))
	}

	a, err := bitset.Parse[uint](c.A, opts...)
	if err != nil {
		return errors.Wrap(err, "parse set a")
	}

	b, err := bitset.New[uint](opts...)
	if err != nil {
		return errors.Wrap(err, "create set b")
	}
	for _, v := range []uint{2, 3, 9} {
		if err := b.Set(v, true); err != nil {
			return errors.Wrap(err, "fill set b")
		}
	}

	w := rc.out
	line := strings.Repeat("-", 40)

	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintln(w, "a ->", a)
	fmt.Fprintln(w, "b ->", b)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Testing BitSet.Get:")
	for _, set := range []struct {
		name string
		s    *bitset.BitSet[uint]
	}{{"a", a}, {"b", b}} {
		for _, num := range []uint{0, 1, 2, 3, 5, 7, 8, 9, 15, 45, 120} {
			fmt.Fprintf(w, "%s.Get(%d) -> %t\n", set.name, num, set.s.Get(num))
		}
	}

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Testing set operations:")
	fmt.Fprintln(w, "a | b ->", bitset.Union(a, b))
	fmt.Fprintln(w, "a & b ->", bitset.Intersection(a, b))
	fmt.Fprintln(w, "a ^ b ->", bitset.SymmetricDifference(a, b))

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Testing comparison:")
	printComparison(w, "a", "b", bitset.Equal(a, b))
	printComparison(w, "a", "a", bitset.Equal(a, a))
	printComparison(w, "b", "b", bitset.Equal(b, b))

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Testing copy:")
	cp := a.Clone()
	fmt.Fprintln(w, "c := a.Clone() ->", cp)
	cp = b.Clone()
	fmt.Fprintln(w, "c = b.Clone() ->", cp)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Testing swap:")
	a.Swap(b)
	fmt.Fprintln(w, "a ->", a)
	fmt.Fprintln(w, "b ->", b)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "Testing clear:")
	a.Clear()
	b.Clear()
	fmt.Fprintln(w, "a ->", a)
	fmt.Fprintln(w, "b ->", b)

	return nil
}

func printComparison(w io.Writer, x, y string, equal bool) {
	fmt.Fprintf(w, "%s == %s -> %t\n", x, y, equal)
	fmt.Fprintf(w, "%s != %s -> %t\n", x, y, !equal)
}
