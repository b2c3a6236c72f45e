package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"kennedia_site/internal/catalog"
	"kennedia_site/internal/domain"
)

type SeedService struct {
	w       domain.CatalogWriter
	workers int64
}

func NewSeedService(w domain.CatalogWriter, workers int) *SeedService {
	if workers <= 0 {
		workers = 4
	}
	return &SeedService{w: w, workers: int64(workers)}
}

type SeedReport struct {
	Cities      int
	Hotels      int
	Restaurants int
	Warnings    []string
}

// Seed writes c into the store. Cities go first so hotel and restaurant rows
// can reference them; hotels are written concurrently. A failed hotel does not
// stop the others, all failures are returned joined.
func (s *SeedService) Seed(ctx context.Context, c domain.Catalog) (SeedReport, error) {
	iss := catalog.Validate(c)
	if err := iss.Err(); err != nil {
		return SeedReport{}, err
	}
	rep := SeedReport{Warnings: iss.Warnings}
	for _, w := range iss.Warnings {
		log.Warn().Str("context", "seed").Msg(w)
	}

	for i, ct := range c.Cities {
		if err := s.w.UpsertCity(ctx, i, ct); err != nil {
			return rep, fmt.Errorf("upsert city %s: %w", ct.ID, err)
		}
		rep.Cities++
	}

	sem := semaphore.NewWeighted(s.workers)
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		errs       []error
		acquireErr error
	)
	for i, h := range c.Hotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			acquireErr = fmt.Errorf("seed hotels: %w", err)
			break
		}
		wg.Add(1)
		go func(pos int, h domain.Hotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.w.UpsertHotel(ctx, pos, h); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("seed hotel failed")
				mu.Lock()
				errs = append(errs, fmt.Errorf("upsert hotel %s: %w", h.ID, err))
				mu.Unlock()
				return
			}
			mu.Lock()
			rep.Hotels++
			mu.Unlock()
			log.Debug().Str("id", h.ID).Int("rooms", len(h.Rooms)).Msg("seed hotel ok")
		}(i, h)
	}
	wg.Wait()
	if acquireErr != nil {
		errs = append(errs, acquireErr)
	}

	for i, r := range c.Restaurants {
		if err := s.w.UpsertRestaurant(ctx, i, r); err != nil {
			errs = append(errs, fmt.Errorf("upsert restaurant %s: %w", r.ID, err))
			continue
		}
		rep.Restaurants++
	}
	return rep, errors.Join(errs...)
}
