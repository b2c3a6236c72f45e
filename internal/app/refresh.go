package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"kennedia_site/internal/adapters/observability"
	"kennedia_site/internal/catalog"
	"kennedia_site/internal/domain"
)

// ErrEmptyCatalog is returned when the source has no cities or no hotels, as
// with a database the seeder has not filled yet.
var ErrEmptyCatalog = errors.New("source catalog is empty")

// Swapper is the in-memory catalog the site serves from.
type Swapper interface {
	Snapshot() domain.Catalog
	Replace(domain.Catalog)
}

type Refresher struct {
	src domain.CatalogSource
	dst Swapper
}

func NewRefresher(src domain.CatalogSource, dst Swapper) *Refresher {
	return &Refresher{src: src, dst: dst}
}

// Refresh reloads the catalog from the source and swaps it in when it differs
// from what is being served. Sources that carry no editorial content keep the
// current content. An empty or invalid catalog is rejected and the old one
// stays.
func (r *Refresher) Refresh(ctx context.Context) (bool, error) {
	next, err := r.src.LoadCatalog(ctx)
	if err != nil {
		observability.ObserveRefresh("error")
		return false, fmt.Errorf("load catalog: %w", err)
	}
	if len(next.Hotels) == 0 || len(next.Cities) == 0 {
		observability.ObserveRefresh("error")
		return false, fmt.Errorf("%w: %d cities, %d hotels", ErrEmptyCatalog, len(next.Cities), len(next.Hotels))
	}
	cur := r.dst.Snapshot()
	if isEmptyContent(next.Content) {
		next.Content = cur.Content
	}
	if err := catalog.Validate(next).Err(); err != nil {
		observability.ObserveRefresh("error")
		return false, err
	}
	if catalog.Version(next) == catalog.Version(cur) {
		observability.ObserveRefresh("unchanged")
		return false, nil
	}
	r.dst.Replace(next)
	observability.ObserveRefresh("swapped")
	log.Info().
		Int("hotels", len(next.Hotels)).
		Int("cities", len(next.Cities)).
		Int("restaurants", len(next.Restaurants)).
		Str("version", catalog.Version(next)).
		Msg("catalog swapped")
	return true, nil
}

func isEmptyContent(c domain.Content) bool {
	return len(c.Slides) == 0 && len(c.Testimonials) == 0 && len(c.News) == 0 &&
		len(c.Verticals) == 0 && len(c.Dining) == 0 && len(c.EventTypes) == 0 &&
		len(c.EventVenues) == 0 && len(c.Stats) == 0 && len(c.Values) == 0
}
