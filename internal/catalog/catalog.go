package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync/atomic"

	"kennedia_site/internal/domain"
)

type snapshot struct {
	data    domain.Catalog
	version string
}

// Store serves catalog queries from memory. Replace swaps the whole snapshot
// at once, so a reader sees either the old catalog or the new one.
type Store struct {
	cur atomic.Pointer[snapshot]
}

func New(c domain.Catalog) *Store {
	s := &Store{}
	s.Replace(c)
	return s
}

// NewFromSeed builds a Store from the embedded seed.
func NewFromSeed() (*Store, error) {
	c, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

func (s *Store) Replace(c domain.Catalog) {
	c = c.Clone()
	s.cur.Store(&snapshot{data: c, version: Version(c)})
}

// Version is a short digest of the catalog's JSON encoding.
func Version(c domain.Catalog) string {
	b, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:8])
}

func (s *Store) Version(ctx context.Context) string { return s.cur.Load().version }

func (s *Store) Snapshot() domain.Catalog { return s.cur.Load().data.Clone() }

func (s *Store) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	for _, h := range s.cur.Load().data.Hotels {
		if h.ID == id {
			return h.Clone(), nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

func (s *Store) ListHotels(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, 0)
	for _, h := range s.cur.Load().data.Hotels {
		if Match(h, f) {
			out = append(out, h.Clone())
		}
	}
	return out, nil
}

// Match reports whether h satisfies every predicate set in f.
func Match(h domain.Hotel, f domain.HotelFilter) bool {
	if f.City != "" && f.City != domain.AllCities && h.City != f.City {
		return false
	}
	if f.Region != "" && h.Region != f.Region {
		return false
	}
	if q := strings.ToLower(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.Location), q) {
			return false
		}
	}
	return true
}

func (s *Store) GetCity(ctx context.Context, id string) (domain.City, error) {
	for _, c := range s.cur.Load().data.Cities {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.City{}, domain.ErrNotFound
}

func (s *Store) ListCities(ctx context.Context) ([]domain.City, error) {
	return append([]domain.City{}, s.cur.Load().data.Cities...), nil
}

func (s *Store) ListRestaurants(ctx context.Context, cityID string) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0)
	for _, r := range s.cur.Load().data.Restaurants {
		if r.City == cityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) Content(ctx context.Context) (domain.Content, error) {
	return s.cur.Load().data.Content.Clone(), nil
}

func (s *Store) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	return s.cur.Load().data.Clone(), nil
}
