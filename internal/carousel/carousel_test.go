package carousel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kennedia_site/internal/carousel"
)

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{-4, 3, 2},
		{7, 3, 1},
		{5, 0, 0},
		{5, -2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, carousel.Wrap(tt.i, tt.n), "Wrap(%d, %d)", tt.i, tt.n)
	}
}

func TestCycle_WrapsBothWays(t *testing.T) {
	c := carousel.NewCycle(2, 3)
	assert.Equal(t, 0, c.Next().Index, "last -> first")

	c = carousel.NewCycle(0, 3)
	assert.Equal(t, 2, c.Prev().Index, "first -> last")

	assert.Equal(t, 1, carousel.NewCycle(0, 3).Step(4).Index)
	assert.Equal(t, 0, carousel.NewCycle(9, 1).Next().Index)
}

func TestCycle_FullLoopReturnsToStart(t *testing.T) {
	c := carousel.NewCycle(1, 5)
	for i := 0; i < 5; i++ {
		c = c.Next()
	}
	assert.Equal(t, 1, c.Index)
	for i := 0; i < 5; i++ {
		c = c.Prev()
	}
	assert.Equal(t, 1, c.Index)
}

func TestPager(t *testing.T) {
	p := carousel.Pager{Total: 6, PerPage: 3}
	assert.Equal(t, 2, p.Pages())

	lo, hi := p.Bounds(1)
	assert.Equal(t, []int{3, 6}, []int{lo, hi})

	lo, hi = p.Bounds(2) // wraps to page 0
	assert.Equal(t, []int{0, 3}, []int{lo, hi})

	p = carousel.Pager{Total: 7, PerPage: 3}
	assert.Equal(t, 3, p.Pages())
	lo, hi = p.Bounds(-1)
	assert.Equal(t, []int{6, 7}, []int{lo, hi})

	assert.Equal(t, 0, carousel.Pager{Total: 0, PerPage: 3}.Pages())
	assert.Equal(t, 2, p.Cycle(0).Prev().Index)
}

func TestPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, []string{"a", "b"}, carousel.Page(items, 0, 2))
	assert.Equal(t, []string{"e"}, carousel.Page(items, 2, 2))
	assert.Equal(t, []string{"e"}, carousel.Page(items, -1, 2))
	assert.Empty(t, carousel.Page([]string{}, 0, 2))
}

func TestAutoplay_CancelOnInteract(t *testing.T) {
	a := carousel.NewAutoplay(0, 2, 6*time.Second, carousel.CancelOnInteract)
	assert.True(t, a.Active)

	a = a.Tick()
	assert.Equal(t, 1, a.Index)
	a = a.Tick()
	assert.Equal(t, 0, a.Index, "tick wraps from last slide")

	d, ok := a.Due()
	assert.True(t, ok)
	assert.Equal(t, 6*time.Second, d)

	a = a.Interact(-1)
	assert.Equal(t, 1, a.Index)
	assert.False(t, a.Active)
	_, ok = a.Due()
	assert.False(t, ok)

	assert.Equal(t, 1, a.Tick().Index, "no advance after cancel")
}

func TestAutoplay_RestartOnInteract(t *testing.T) {
	a := carousel.NewAutoplay(0, 3, 5*time.Second, carousel.RestartOnInteract)
	a = a.Interact(-1)
	assert.Equal(t, 2, a.Index)
	assert.True(t, a.Active)
	assert.Equal(t, 0, a.Tick().Index)
}

func TestAutoplay_SingleSlideNeverRuns(t *testing.T) {
	a := carousel.NewAutoplay(0, 1, time.Second, carousel.CancelOnInteract)
	assert.False(t, a.Active)
	_, ok := a.Due()
	assert.False(t, ok)

	a = carousel.NewAutoplay(0, 2, time.Second, carousel.CancelOnInteract).Stop()
	assert.Equal(t, 0, a.Tick().Index)
}
