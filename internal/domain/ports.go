package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Catalog is one consistent snapshot of the reference data.
type Catalog struct {
	Cities      []City       `json:"cities" yaml:"cities"`
	Hotels      []Hotel      `json:"hotels" yaml:"hotels"`
	Restaurants []Restaurant `json:"restaurants" yaml:"restaurants"`
	Content     Content      `json:"content" yaml:"content"`
}

func (c Catalog) Clone() Catalog {
	out := Catalog{
		Cities:      cloneList(c.Cities),
		Restaurants: cloneList(c.Restaurants),
		Content:     c.Content.Clone(),
	}
	if c.Hotels != nil {
		out.Hotels = make([]Hotel, len(c.Hotels))
		for i, h := range c.Hotels {
			out.Hotels[i] = h.Clone()
		}
	}
	return out
}

type CatalogRepository interface {
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context, f HotelFilter) ([]Hotel, error)
	GetCity(ctx context.Context, id string) (City, error)
	ListCities(ctx context.Context) ([]City, error)
	ListRestaurants(ctx context.Context, cityID string) ([]Restaurant, error)
	Content(ctx context.Context) (Content, error)
	Version(ctx context.Context) string
}

// CatalogWriter persists catalog rows. pos is the row's place in catalog
// order, which readers restore.
type CatalogWriter interface {
	UpsertCity(ctx context.Context, pos int, c City) error
	UpsertHotel(ctx context.Context, pos int, h Hotel) error // hotel row + its rooms
	UpsertRestaurant(ctx context.Context, pos int, r Restaurant) error
}

type CatalogSource interface {
	LoadCatalog(ctx context.Context) (Catalog, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// AllCities is the listing filter value meaning "no city predicate".
const AllCities = "all"

type HotelFilter struct {
	City   string // city tag; "" or AllCities disables the predicate
	Query  string // case-insensitive substring of name or location
	Region string
}

// Read models

type HotelCard struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	City             string   `json:"city"`
	CityName         string   `json:"cityName"`
	ShortDescription string   `json:"shortDescription"`
	Image            string   `json:"image"`
	Rating           float64  `json:"rating"`
	PriceFrom        int64    `json:"priceFrom"`
	PriceLabel       string   `json:"priceLabel"`
	Amenities        []string `json:"amenities"` // first three only
}

type HotelsPage struct {
	Items      []HotelCard `json:"items"`
	Count      int         `json:"count"`
	CountLabel string      `json:"countLabel"`
}

type HotelView struct {
	Hotel
	PriceLabel string   `json:"priceLabel"`
	RoomPrices []string `json:"roomPrices"`
	CityName   string   `json:"cityName"`
}

type LocationView struct {
	City        City         `json:"city"`
	Hotels      []HotelCard  `json:"hotels"`
	Restaurants []Restaurant `json:"restaurants"`
}
