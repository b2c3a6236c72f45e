package httpserver

import (
	"net/url"
	"strconv"
	"time"

	"kennedia_site/internal/carousel"
	"kennedia_site/internal/domain"
)

const (
	heroInterval        = 6 * time.Second
	testimonialInterval = 5 * time.Second
	citiesPerPage       = 3
)

// homeState is everything the home page keeps in its query string.
type homeState struct {
	Hero  carousel.Autoplay
	Quote carousel.Autoplay
	Page  carousel.Cycle
}

func parseHomeState(q url.Values, slides, quotes, cities int) homeState {
	hero := carousel.NewAutoplay(intParam(q, "slide"), slides, heroInterval, carousel.CancelOnInteract)
	if q.Get("auto") == "0" {
		hero = hero.Stop()
	}
	return homeState{
		Hero:  hero,
		Quote: carousel.NewAutoplay(intParam(q, "t"), quotes, testimonialInterval, carousel.RestartOnInteract),
		Page:  carousel.Pager{Total: cities, PerPage: citiesPerPage}.Cycle(intParam(q, "page")),
	}
}

func intParam(q url.Values, k string) int {
	n, err := strconv.Atoi(q.Get(k))
	if err != nil {
		return 0
	}
	return n
}

func (s homeState) URL() string {
	v := url.Values{}
	v.Set("slide", strconv.Itoa(s.Hero.Index))
	if !s.Hero.Active {
		v.Set("auto", "0")
	}
	v.Set("t", strconv.Itoa(s.Quote.Index))
	v.Set("page", strconv.Itoa(s.Page.Index))
	return "/?" + v.Encode()
}

func (s homeState) withHero(a carousel.Autoplay) homeState {
	s.Hero = a
	return s
}

func (s homeState) withQuote(a carousel.Autoplay) homeState {
	s.Quote = a
	return s
}

func (s homeState) withPage(c carousel.Cycle) homeState {
	s.Page = c
	return s
}

// tick is the state the next automatic refresh lands on. While the hero plays
// it drives the refresh and the testimonials advance along with it; once the
// hero is stopped the testimonials keep their own interval.
func (s homeState) tick() (homeState, time.Duration, bool) {
	if d, ok := s.Hero.Due(); ok {
		next := s.withHero(s.Hero.Tick())
		if _, qok := s.Quote.Due(); qok {
			next = next.withQuote(s.Quote.Tick())
		}
		return next, d, true
	}
	if d, ok := s.Quote.Due(); ok {
		return s.withQuote(s.Quote.Tick()), d, true
	}
	return s, 0, false
}

type homeView struct {
	Slide     domain.Slide
	Slides    []domain.Slide
	SlideNo   int
	HeroPrev  string
	HeroNext  string
	HeroPause string
	Autoplay  bool

	Cities    []domain.City
	CityPage  int
	CityPages int
	CityPrev  string
	CityNext  string

	Quote     domain.Testimonial
	QuoteNo   int
	QuoteLen  int
	QuotePrev string
	QuoteNext string

	Verticals []domain.Vertical
	News      []domain.NewsItem
}

func buildHome(st homeState, content domain.Content, cities []domain.City) homeView {
	v := homeView{
		Slides:    content.Slides,
		SlideNo:   st.Hero.Index,
		HeroPrev:  st.withHero(st.Hero.Interact(-1)).URL(),
		HeroNext:  st.withHero(st.Hero.Interact(1)).URL(),
		HeroPause: st.withHero(st.Hero.Stop()).URL(),
		Autoplay:  st.Hero.Active,

		Cities:    carousel.Page(cities, st.Page.Index, citiesPerPage),
		CityPage:  st.Page.Index + 1,
		CityPages: st.Page.Len,
		CityPrev:  st.withPage(st.Page.Prev()).URL(),
		CityNext:  st.withPage(st.Page.Next()).URL(),

		QuoteNo:   st.Quote.Index,
		QuoteLen:  st.Quote.Len,
		QuotePrev: st.withQuote(st.Quote.Interact(-1)).URL(),
		QuoteNext: st.withQuote(st.Quote.Interact(1)).URL(),

		Verticals: content.Verticals,
		News:      content.News,
	}
	if len(content.Slides) > 0 {
		v.Slide = content.Slides[st.Hero.Index]
	}
	if len(content.Testimonials) > 0 {
		v.Quote = content.Testimonials[st.Quote.Index]
	}
	return v
}
