package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"kennedia_site/internal/adapters/observability"
	"kennedia_site/internal/domain"
)

type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// key namespaces every entry by catalog version, so a refreshed catalog never
// serves views built from the previous one.
func (s *QueryService) key(ctx context.Context, parts ...string) string {
	return s.repo.Version(ctx) + ":" + strings.Join(parts, ":")
}

func (s *QueryService) ttl() int { return int(s.cacheTTL.Seconds()) }

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.HotelView, error) {
	key := s.key(ctx, "hotel", id)
	var hv domain.HotelView
	if ok, err := s.cache.Get(ctx, key, &hv); ok && err == nil {
		return hv, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			observability.ObserveLookup("hotel", false)
		}
		return domain.HotelView{}, err
	}
	observability.ObserveLookup("hotel", true)

	names, err := s.cityNames(ctx)
	if err != nil {
		return domain.HotelView{}, err
	}
	hv = hotelView(h, names)
	_ = s.cache.Set(ctx, key, hv, s.ttl())
	return hv, nil
}

func (s *QueryService) ListHotels(ctx context.Context, f domain.HotelFilter) (domain.HotelsPage, error) {
	f = normalizeFilter(f)
	key := s.key(ctx, "hotels", f.City, f.Region, f.Query)
	var out domain.HotelsPage
	if ok, err := s.cache.Get(ctx, key, &out); ok && err == nil {
		return out, nil
	}
	hs, err := s.repo.ListHotels(ctx, f)
	if err != nil {
		return domain.HotelsPage{}, err
	}
	names, err := s.cityNames(ctx)
	if err != nil {
		return domain.HotelsPage{}, err
	}
	out = hotelsPage(hs, names)
	_ = s.cache.Set(ctx, key, out, s.ttl())
	return out, nil
}

// GetLocation assembles a city page. Hotels and restaurants may come back
// empty; the page omits those sections.
func (s *QueryService) GetLocation(ctx context.Context, cityID string) (domain.LocationView, error) {
	key := s.key(ctx, "location", cityID)
	var lv domain.LocationView
	if ok, err := s.cache.Get(ctx, key, &lv); ok && err == nil {
		return lv, nil
	}
	city, err := s.repo.GetCity(ctx, cityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			observability.ObserveLookup("city", false)
		}
		return domain.LocationView{}, err
	}
	observability.ObserveLookup("city", true)

	var (
		hotels []domain.Hotel
		rests  []domain.Restaurant
		names  map[string]string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hotels, err = s.repo.ListHotels(gctx, domain.HotelFilter{City: cityID})
		return err
	})
	g.Go(func() (err error) {
		rests, err = s.repo.ListRestaurants(gctx, cityID)
		return err
	})
	g.Go(func() (err error) {
		names, err = s.cityNames(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.LocationView{}, fmt.Errorf("location %s: %w", cityID, err)
	}

	lv = domain.LocationView{
		City:        city,
		Hotels:      hotelCards(hotels, names),
		Restaurants: append([]domain.Restaurant{}, rests...),
	}
	_ = s.cache.Set(ctx, key, lv, s.ttl())
	return lv, nil
}

func (s *QueryService) GetCity(ctx context.Context, id string) (domain.City, error) {
	c, err := s.repo.GetCity(ctx, id)
	observability.ObserveLookup("city", err == nil)
	return c, err
}

func (s *QueryService) ListCities(ctx context.Context) ([]domain.City, error) {
	return s.repo.ListCities(ctx)
}

func (s *QueryService) Content(ctx context.Context) (domain.Content, error) {
	return s.repo.Content(ctx)
}

func (s *QueryService) cityNames(ctx context.Context) (map[string]string, error) {
	cs, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(cs))
	for _, c := range cs {
		m[c.ID] = c.Name
	}
	return m, nil
}

func normalizeFilter(f domain.HotelFilter) domain.HotelFilter {
	f.City = strings.TrimSpace(f.City)
	if f.City == domain.AllCities {
		f.City = ""
	}
	f.Region = strings.TrimSpace(f.Region)
	f.Query = strings.ToLower(f.Query)
	return f
}
