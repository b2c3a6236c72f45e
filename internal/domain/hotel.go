package domain

type Hotel struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Location         string   `json:"location" yaml:"location"`
	City             string   `json:"city" yaml:"city"` // city tag, matches City.ID
	Region           string   `json:"region" yaml:"region"`
	Country          string   `json:"country" yaml:"country"`
	Description      string   `json:"description" yaml:"description"`
	ShortDescription string   `json:"shortDescription" yaml:"shortDescription"`
	Image            string   `json:"image" yaml:"image"`
	Rating           float64  `json:"rating" yaml:"rating"`
	PriceFrom        int64    `json:"priceFrom" yaml:"priceFrom"`
	Amenities        []string `json:"amenities" yaml:"amenities"`
	Rooms            []Room   `json:"rooms" yaml:"rooms"`
	Contact          Contact  `json:"contact" yaml:"contact"`
	Coordinates      Coords   `json:"coordinates" yaml:"coordinates"`
}

type Room struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	PricePerNight int64    `json:"pricePerNight" yaml:"pricePerNight"`
	MaxGuests     int      `json:"maxGuests" yaml:"maxGuests"`
	Size          string   `json:"size" yaml:"size"`
	Amenities     []string `json:"amenities" yaml:"amenities"`
	Image         string   `json:"image" yaml:"image"`
}

type Contact struct {
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
	Address string `json:"address" yaml:"address"`
}

type Coords struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Clone returns a deep copy so callers can't reach into the catalog's slices.
func (h Hotel) Clone() Hotel {
	out := h
	out.Amenities = cloneList(h.Amenities)
	if h.Rooms != nil {
		out.Rooms = make([]Room, len(h.Rooms))
		for i, r := range h.Rooms {
			r.Amenities = cloneList(r.Amenities)
			out.Rooms[i] = r
		}
	}
	return out
}
