// Package carousel holds the index arithmetic behind the site's sliders and
// pagers. Every index wraps modulo the list length in both directions.
package carousel

// Wrap maps i into [0, n). n <= 0 yields 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

type Cycle struct {
	Index int
	Len   int
}

func NewCycle(index, n int) Cycle { return Cycle{Index: Wrap(index, n), Len: n} }

func (c Cycle) Step(delta int) Cycle { return Cycle{Index: Wrap(c.Index+delta, c.Len), Len: c.Len} }

func (c Cycle) Next() Cycle { return c.Step(1) }

func (c Cycle) Prev() Cycle { return c.Step(-1) }
