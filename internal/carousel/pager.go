package carousel

// Pager splits Total items into pages of PerPage.
type Pager struct {
	Total   int
	PerPage int
}

func (p Pager) Pages() int {
	if p.Total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// Bounds returns the half-open item range of page, after wrapping it.
func (p Pager) Bounds(page int) (lo, hi int) {
	n := p.Pages()
	if n == 0 {
		return 0, 0
	}
	page = Wrap(page, n)
	lo = page * p.PerPage
	hi = min(lo+p.PerPage, p.Total)
	return lo, hi
}

// Cycle returns the page index as a Cycle over Pages().
func (p Pager) Cycle(page int) Cycle { return NewCycle(page, p.Pages()) }

// Page returns the items visible on page.
func Page[T any](items []T, page, perPage int) []T {
	lo, hi := Pager{Total: len(items), PerPage: perPage}.Bounds(page)
	return items[lo:hi]
}
