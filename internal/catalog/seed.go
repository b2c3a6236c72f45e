package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"kennedia_site/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

// LoadSeed decodes the catalog compiled into the binary.
func LoadSeed() (domain.Catalog, error) {
	return decode(seedYAML)
}

// LoadFile decodes a catalog document in the seed format from disk.
func LoadFile(path string) (domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Catalog{}, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return domain.Catalog{}, err
	}
	return decode(b)
}

func decode(b []byte) (domain.Catalog, error) {
	var c domain.Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return c, nil
}

// Issues collects what Validate found. Warnings don't block loading.
type Issues struct {
	Errors   []string
	Warnings []string
}

func (i Issues) Err() error {
	if len(i.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("invalid catalog: %v", i.Errors)
}

// Validate checks id uniqueness and cross references. A hotel or restaurant
// tagged with a city that has no City record is only a warning: it still
// lists, its location page just doesn't exist.
func Validate(c domain.Catalog) Issues {
	var out Issues
	dup := func(kind string, ids []string) {
		seen := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			if id == "" {
				out.Errors = append(out.Errors, kind+" with empty id")
				continue
			}
			if _, ok := seen[id]; ok {
				out.Errors = append(out.Errors, fmt.Sprintf("duplicate %s id %q", kind, id))
			}
			seen[id] = struct{}{}
		}
	}

	cityIDs := make([]string, 0, len(c.Cities))
	known := make(map[string]struct{}, len(c.Cities))
	for _, ct := range c.Cities {
		cityIDs = append(cityIDs, ct.ID)
		known[ct.ID] = struct{}{}
	}
	dup("city", cityIDs)

	hotelIDs := make([]string, 0, len(c.Hotels))
	for _, h := range c.Hotels {
		hotelIDs = append(hotelIDs, h.ID)
		if _, ok := known[h.City]; !ok {
			out.Warnings = append(out.Warnings, fmt.Sprintf("hotel %q references unknown city %q", h.ID, h.City))
		}
		roomIDs := make([]string, 0, len(h.Rooms))
		for _, r := range h.Rooms {
			roomIDs = append(roomIDs, r.ID)
		}
		dup("room in "+h.ID, roomIDs)
	}
	dup("hotel", hotelIDs)

	restIDs := make([]string, 0, len(c.Restaurants))
	for _, r := range c.Restaurants {
		restIDs = append(restIDs, r.ID)
		if _, ok := known[r.City]; !ok {
			out.Warnings = append(out.Warnings, fmt.Sprintf("restaurant %q references unknown city %q", r.ID, r.City))
		}
	}
	dup("restaurant", restIDs)
	return out
}
