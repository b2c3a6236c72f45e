package httpserver

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"kennedia_site/internal/adapters/observability"
	"kennedia_site/internal/app"
	"kennedia_site/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"stars":  stars,
	"rupees": app.FormatRupees,
}

// stars renders a rating as a row of filled stars.
func stars(v any) string {
	var n int
	switch r := v.(type) {
	case int:
		n = r
	case float64:
		n = int(math.Round(r))
	}
	if n < 0 {
		n = 0
	}
	return strings.Repeat("★", n)
}

var pageNames = []string{
	"home", "hotels", "hotel", "dining", "events", "about", "location", "newsletter", "notfound", "error",
}

// Pages renders the public site.
type Pages struct {
	Q       *app.QueryService
	N       *app.NewsletterService
	Limiter *IPRateLimiter

	tmpl map[string]*template.Template
}

// page is the data every template receives; Data is the page-specific part.
type page struct {
	Title   string
	Active  string
	Refresh int    // seconds, 0 = none
	NextURL string // meta refresh target
	Data    any
}

func NewPages(q *app.QueryService, n *app.NewsletterService, l *IPRateLimiter) (*Pages, error) {
	p := &Pages{Q: q, N: n, Limiter: l, tmpl: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		p.tmpl[name] = t
	}
	return p, nil
}

func (s *Server) MountPages(p *Pages) {
	s.mux.Get("/", p.home)
	s.mux.Get("/hotels", p.hotels)
	s.mux.Get("/hotels/{id}", p.hotel)
	s.mux.Get("/dining", p.dining)
	s.mux.Get("/events", p.events)
	s.mux.Get("/about", p.about)
	s.mux.Get("/location/{cityId}", p.location)
	s.mux.With(RateLimit(p.Limiter)).Post("/newsletter", p.subscribe)
	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		p.notFound(w, "Page Not Found", "The page you are looking for does not exist.", "/", "Return Home")
	})
}

// render buffers the template so a failing render never leaves half a page.
func (p *Pages) render(w http.ResponseWriter, status int, name string, pg page) {
	var buf bytes.Buffer
	if err := p.tmpl[name].Execute(&buf, pg); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("template", name).Msg("write page failed")
	}
}

type notFoundView struct {
	Heading  string
	Message  string
	Link     string
	LinkText string
}

func (p *Pages) notFound(w http.ResponseWriter, heading, msg, link, linkText string) {
	p.render(w, http.StatusNotFound, "notfound", page{
		Title: heading,
		Data:  notFoundView{Heading: heading, Message: msg, Link: link, LinkText: linkText},
	})
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Error().Err(err).Str("path", r.URL.Path).Msg("page failed")
	p.render(w, http.StatusInternalServerError, "error", page{Title: "Something went wrong"})
}

func (p *Pages) home(w http.ResponseWriter, r *http.Request) {
	content, err := p.Q.Content(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	cities, err := p.Q.ListCities(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}

	st := parseHomeState(r.URL.Query(), len(content.Slides), len(content.Testimonials), len(cities))
	pg := page{Title: "Kennedia Hotels", Active: "home", Data: buildHome(st, content, cities)}
	if next, d, ok := st.tick(); ok {
		pg.Refresh = int(d.Seconds())
		pg.NextURL = next.URL()
	}
	p.render(w, http.StatusOK, "home", pg)
}

type hotelsView struct {
	Cities []domain.City
	City   string
	Query  string
	Result domain.HotelsPage
}

func (p *Pages) hotels(w http.ResponseWriter, r *http.Request) {
	f := filterFrom(r)
	if f.City == "" {
		f.City = domain.AllCities
	}
	res, err := p.Q.ListHotels(r.Context(), f)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	cities, err := p.Q.ListCities(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, http.StatusOK, "hotels", page{
		Title:  "Our Hotels",
		Active: "hotels",
		Data:   hotelsView{Cities: cities, City: f.City, Query: f.Query, Result: res},
	})
}

func (p *Pages) hotel(w http.ResponseWriter, r *http.Request) {
	hv, err := p.Q.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrNotFound) {
		p.notFound(w, "Hotel Not Found", "The hotel you're looking for doesn't exist.", "/hotels", "Back to Hotels")
		return
	}
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, http.StatusOK, "hotel", page{Title: hv.Name, Active: "hotels", Data: hv})
}

type diningView struct {
	Featured *domain.DiningVenue
	Others   []domain.DiningVenue
}

func splitDining(vs []domain.DiningVenue) diningView {
	var out diningView
	for _, v := range vs {
		if v.Featured && out.Featured == nil {
			out.Featured = &v
			continue
		}
		out.Others = append(out.Others, v)
	}
	return out
}

func (p *Pages) dining(w http.ResponseWriter, r *http.Request) {
	c, err := p.Q.Content(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, http.StatusOK, "dining", page{Title: "Dining", Active: "dining", Data: splitDining(c.Dining)})
}

func (p *Pages) events(w http.ResponseWriter, r *http.Request) {
	c, err := p.Q.Content(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, http.StatusOK, "events", page{Title: "Events & Celebrations", Active: "events", Data: c})
}

func (p *Pages) about(w http.ResponseWriter, r *http.Request) {
	c, err := p.Q.Content(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, http.StatusOK, "about", page{Title: "About Kennedia", Active: "about", Data: c})
}

func (p *Pages) location(w http.ResponseWriter, r *http.Request) {
	lv, err := p.Q.GetLocation(r.Context(), chi.URLParam(r, "cityId"))
	if errors.Is(err, domain.ErrNotFound) {
		p.notFound(w, "City Not Found", "We don't have a location page for that city yet.", "/", "Return Home")
		return
	}
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, http.StatusOK, "location", page{Title: "Kennedia " + lv.City.Name, Data: lv})
}

type newsletterView struct {
	OK      bool
	Message string
	Back    string
}

func (p *Pages) subscribe(w http.ResponseWriter, r *http.Request) {
	back := r.FormValue("back")
	if !strings.HasPrefix(back, "/") || strings.HasPrefix(back, "//") {
		back = "/"
	}
	msg, err := p.N.Subscribe(r.Context(), r.FormValue("email"))
	if err != nil {
		observability.ObserveSignup("invalid")
		p.render(w, http.StatusBadRequest, "newsletter", page{
			Title: "Newsletter",
			Data:  newsletterView{Message: "Please enter a valid email address.", Back: back},
		})
		return
	}
	observability.ObserveSignup("ok")
	p.render(w, http.StatusOK, "newsletter", page{
		Title: "Newsletter",
		Data:  newsletterView{OK: true, Message: msg, Back: back},
	})
}
