package domain

// Content is the editorial copy shown around the catalog: carousels, news, venues.
type Content struct {
	Slides       []Slide       `json:"slides" yaml:"slides"`
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
	News         []NewsItem    `json:"news" yaml:"news"`
	Verticals    []Vertical    `json:"verticals" yaml:"verticals"`
	Dining       []DiningVenue `json:"dining" yaml:"dining"`
	EventTypes   []EventType   `json:"eventTypes" yaml:"eventTypes"`
	EventVenues  []EventVenue  `json:"eventVenues" yaml:"eventVenues"`
	Stats        []Stat        `json:"stats" yaml:"stats"`
	Values       []Value       `json:"values" yaml:"values"`
}

// Clone copies every list. The element types hold only scalars.
func (c Content) Clone() Content {
	return Content{
		Slides:       cloneList(c.Slides),
		Testimonials: cloneList(c.Testimonials),
		News:         cloneList(c.News),
		Verticals:    cloneList(c.Verticals),
		Dining:       cloneList(c.Dining),
		EventTypes:   cloneList(c.EventTypes),
		EventVenues:  cloneList(c.EventVenues),
		Stats:        cloneList(c.Stats),
		Values:       cloneList(c.Values),
	}
}

func cloneList[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

type Slide struct {
	Image    string `json:"image" yaml:"image"`
	Title    string `json:"title" yaml:"title"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	CTA      string `json:"cta" yaml:"cta"`
	Link     string `json:"link" yaml:"link"`
}

type Testimonial struct {
	ID       int    `json:"id" yaml:"id"`
	Quote    string `json:"quote" yaml:"quote"`
	Author   string `json:"author" yaml:"author"`
	Title    string `json:"title" yaml:"title"`
	Location string `json:"location" yaml:"location"`
	Rating   int    `json:"rating" yaml:"rating"`
	Image    string `json:"image" yaml:"image"`
}

type NewsItem struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Image    string `json:"image" yaml:"image"`
	Date     string `json:"date" yaml:"date"`
	Category string `json:"category" yaml:"category"`
}

type Vertical struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Link        string `json:"link" yaml:"link"`
	Accent      string `json:"accent" yaml:"accent"`
}

// DiningVenue is a signature restaurant on the dining page; unrelated to the
// city-tagged Restaurant records.
type DiningVenue struct {
	ID          int     `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Location    string  `json:"location" yaml:"location"`
	Cuisine     string  `json:"cuisine" yaml:"cuisine"`
	Description string  `json:"description" yaml:"description"`
	Hours       string  `json:"hours" yaml:"hours"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Image       string  `json:"image" yaml:"image"`
	Featured    bool    `json:"featured" yaml:"featured"`
}

type EventType struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	Image       string `json:"image" yaml:"image"`
	Capacity    string `json:"capacity" yaml:"capacity"`
}

type EventVenue struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Capacity string `json:"capacity" yaml:"capacity"`
	Sqft     string `json:"sqft" yaml:"sqft"`
}

type Stat struct {
	Number string `json:"number" yaml:"number"`
	Label  string `json:"label" yaml:"label"`
}

type Value struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}
