package app

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"kennedia_site/internal/domain"
)

var printer = message.NewPrinter(language.English)

// FormatRupees renders 12000 as "₹12,000".
func FormatRupees(v int64) string { return printer.Sprintf("₹%d", v) }

// CountLabel is the "Showing N properties" noun phrase.
func CountLabel(n int) string {
	if n == 1 {
		return "1 property"
	}
	return printer.Sprintf("%d properties", n)
}

// cityName falls back to the raw tag for hotels whose city has no record.
func cityName(names map[string]string, tag string) string {
	if n, ok := names[tag]; ok {
		return n
	}
	return tag
}

func hotelCard(h domain.Hotel, names map[string]string) domain.HotelCard {
	am := h.Amenities
	if len(am) > 3 {
		am = am[:3]
	}
	return domain.HotelCard{
		ID:               h.ID,
		Name:             h.Name,
		Location:         h.Location,
		City:             h.City,
		CityName:         cityName(names, h.City),
		ShortDescription: h.ShortDescription,
		Image:            h.Image,
		Rating:           h.Rating,
		PriceFrom:        h.PriceFrom,
		PriceLabel:       FormatRupees(h.PriceFrom),
		Amenities:        append([]string{}, am...),
	}
}

func hotelCards(hs []domain.Hotel, names map[string]string) []domain.HotelCard {
	out := make([]domain.HotelCard, 0, len(hs))
	for _, h := range hs {
		out = append(out, hotelCard(h, names))
	}
	return out
}

func hotelsPage(hs []domain.Hotel, names map[string]string) domain.HotelsPage {
	return domain.HotelsPage{
		Items:      hotelCards(hs, names),
		Count:      len(hs),
		CountLabel: CountLabel(len(hs)),
	}
}

func hotelView(h domain.Hotel, names map[string]string) domain.HotelView {
	prices := make([]string, 0, len(h.Rooms))
	for _, r := range h.Rooms {
		prices = append(prices, FormatRupees(r.PricePerNight))
	}
	return domain.HotelView{
		Hotel:      h,
		PriceLabel: FormatRupees(h.PriceFrom),
		RoomPrices: prices,
		CityName:   cityName(names, h.City),
	}
}
