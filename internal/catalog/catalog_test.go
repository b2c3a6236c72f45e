package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennedia_site/internal/catalog"
	"kennedia_site/internal/domain"
)

func seedStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.NewFromSeed()
	require.NoError(t, err)
	return s
}

func TestSeed_Decodes(t *testing.T) {
	c, err := catalog.LoadSeed()
	require.NoError(t, err)

	assert.Len(t, c.Cities, 6)
	assert.Len(t, c.Hotels, 7)
	assert.Len(t, c.Restaurants, 7)
	assert.Len(t, c.Content.Slides, 2)
	assert.Len(t, c.Content.Testimonials, 3)
	assert.Equal(t, "+91 80 6688 8888", c.Hotels[0].Contact.Phone)
	assert.Equal(t, 5.0, c.Hotels[0].Rating)
	assert.Len(t, c.Hotels[0].Rooms, 2)
}

func TestGetHotel_EveryIDResolvesToExactlyOne(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	for _, want := range s.Snapshot().Hotels {
		got, err := s.GetHotel(ctx, want.ID)
		require.NoError(t, err, want.ID)
		assert.Equal(t, want.ID, got.ID)

		n := 0
		for _, h := range s.Snapshot().Hotels {
			if h.ID == want.ID {
				n++
			}
		}
		assert.Equal(t, 1, n, "id %s must be unique", want.ID)
	}
}

func TestGetHotel_UnknownID(t *testing.T) {
	s := seedStore(t)
	for _, id := range []string{"", "kennedia-paris", "KENNEDIA-GOA", "kennedia-goa "} {
		_, err := s.GetHotel(context.Background(), id)
		assert.True(t, errors.Is(err, domain.ErrNotFound), "id %q", id)
	}
}

func TestGetHotel_ReturnsCopy(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	h, err := s.GetHotel(ctx, "kennedia-bangalore")
	require.NoError(t, err)
	h.Amenities[0] = "mutated"
	h.Rooms[0].Name = "mutated"

	again, err := s.GetHotel(ctx, "kennedia-bangalore")
	require.NoError(t, err)
	assert.Equal(t, "Infinity Pool", again.Amenities[0])
	assert.Equal(t, "Deluxe King Room", again.Rooms[0].Name)
}

func TestContent_ReturnsCopy(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()
	version := s.Version(ctx)

	c, err := s.Content(ctx)
	require.NoError(t, err)
	c.Slides[0].Title = "mutated"
	c.Dining[0].Name = "mutated"

	again, err := s.Content(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Experience Timeless Luxury", again.Slides[0].Title)
	assert.NotEqual(t, "mutated", again.Dining[0].Name)
	assert.Equal(t, version, s.Version(ctx))
}

func TestSnapshot_ReturnsCopy(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	snap := s.Snapshot()
	assert.Equal(t, s.Version(ctx), catalog.Version(snap), "a copy has the same version")
	snap.Cities[0].Name = "mutated"
	snap.Hotels[0].Rooms[0].Name = "mutated"
	snap.Content.Testimonials[0].Author = "mutated"

	loaded, err := s.LoadCatalog(ctx)
	require.NoError(t, err)
	loaded.Restaurants[0].Name = "mutated"

	c, err := s.GetCity(ctx, "bangalore")
	require.NoError(t, err)
	assert.Equal(t, "Bangalore", c.Name)
	h, err := s.GetHotel(ctx, "kennedia-bangalore")
	require.NoError(t, err)
	assert.Equal(t, "Deluxe King Room", h.Rooms[0].Name)
	content, _ := s.Content(ctx)
	assert.NotEqual(t, "mutated", content.Testimonials[0].Author)
	rs, err := s.ListRestaurants(ctx, s.Snapshot().Restaurants[0].City)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", rs[0].Name)
}

func TestReplace_CopiesInput(t *testing.T) {
	c, err := catalog.LoadSeed()
	require.NoError(t, err)
	s := catalog.New(c)

	c.Hotels[0].Name = "mutated"
	h, err := s.GetHotel(context.Background(), c.Hotels[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", h.Name)
}

func TestListHotels_Filters(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		f    domain.HotelFilter
		want []string
	}{
		{"no filter", domain.HotelFilter{}, []string{
			"kennedia-bangalore", "kennedia-bangalore-whitefield", "kennedia-mumbai",
			"kennedia-delhi", "kennedia-goa", "kennedia-chennai", "kennedia-hyderabad",
		}},
		{"all cities", domain.HotelFilter{City: domain.AllCities}, nil},
		{"city bangalore", domain.HotelFilter{City: "bangalore"}, []string{"kennedia-bangalore", "kennedia-bangalore-whitefield"}},
		{"city and search intersect", domain.HotelFilter{City: "bangalore", Query: "whitefield"}, []string{"kennedia-bangalore-whitefield"}},
		{"search matches location, case-insensitive", domain.HotelFilter{Query: "NARIMAN"}, []string{"kennedia-mumbai"}},
		{"search matches name", domain.HotelFilter{Query: "beach resort"}, []string{"kennedia-goa"}},
		{"search keeps surrounding spaces", domain.HotelFilter{Query: "road "}, []string{}},
		{"search road", domain.HotelFilter{Query: "road"}, []string{"kennedia-bangalore", "kennedia-chennai"}},
		{"disjoint predicates", domain.HotelFilter{City: "goa", Query: "mumbai"}, []string{}},
		{"city without hotels", domain.HotelFilter{City: "jaipur"}, []string{}},
		{"region", domain.HotelFilter{Region: "west-india"}, []string{"kennedia-mumbai", "kennedia-goa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListHotels(ctx, tt.f)
			require.NoError(t, err)
			require.NotNil(t, got)
			if tt.want == nil {
				assert.Len(t, got, 7)
				return
			}
			ids := make([]string, 0, len(got))
			for _, h := range got {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListHotels_CityFilterOnlyReturnsThatCity(t *testing.T) {
	s := seedStore(t)
	got, err := s.ListHotels(context.Background(), domain.HotelFilter{City: "bangalore"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, h := range got {
		assert.Equal(t, "bangalore", h.City)
	}
}

func TestListRestaurants(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	rs, err := s.ListRestaurants(ctx, "bangalore")
	require.NoError(t, err)
	assert.Len(t, rs, 2)

	rs, err = s.ListRestaurants(ctx, "jaipur")
	require.NoError(t, err)
	assert.NotNil(t, rs)
	assert.Empty(t, rs)
}

func TestGetCity(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()

	c, err := s.GetCity(ctx, "goa")
	require.NoError(t, err)
	assert.Equal(t, "Goa", c.Name)

	_, err = s.GetCity(ctx, "chennai")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReplace_ChangesVersion(t *testing.T) {
	s := seedStore(t)
	ctx := context.Background()
	before := s.Version(ctx)
	require.NotEmpty(t, before)

	c := s.Snapshot()
	c.Cities = append([]domain.City{}, c.Cities...)
	c.Cities = append(c.Cities, domain.City{ID: "chennai", Name: "Chennai"})
	s.Replace(c)

	assert.NotEqual(t, before, s.Version(ctx))
	city, err := s.GetCity(ctx, "chennai")
	require.NoError(t, err)
	assert.Equal(t, "Chennai", city.Name)
}

func TestValidate_Seed(t *testing.T) {
	c, err := catalog.LoadSeed()
	require.NoError(t, err)

	iss := catalog.Validate(c)
	assert.NoError(t, iss.Err())
	assert.Contains(t, iss.Warnings, `hotel "kennedia-chennai" references unknown city "chennai"`)
	assert.Contains(t, iss.Warnings, `restaurant "chennai-chettinad" references unknown city "chennai"`)
}

func TestValidate_Duplicates(t *testing.T) {
	c := domain.Catalog{
		Cities: []domain.City{{ID: "goa"}, {ID: "goa"}},
		Hotels: []domain.Hotel{{ID: "h", City: "goa"}, {ID: "h", City: "goa"}},
	}
	iss := catalog.Validate(c)
	assert.Error(t, iss.Err())
	assert.Len(t, iss.Errors, 2)
}
