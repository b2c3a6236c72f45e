package mysql

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"kennedia_site/internal/domain"
)

//go:embed migrations/*.sql
var migrations embed.FS

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func jsonList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func decodeList(b []byte) []string {
	out := []string{}
	if len(b) > 0 {
		_ = json.Unmarshal(b, &out)
	}
	return out
}

// Repo is the MySQL copy of the catalog: the seeder writes it, the site reads
// it back as a CatalogSource.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Migrate applies the embedded schema files in name order. Statements are
// idempotent.
func (r *Repo) Migrate(ctx context.Context) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := migrations.ReadFile(f)
		if err != nil {
			return err
		}
		for _, stmt := range strings.Split(string(b), ";") {
			if strings.TrimSpace(stmt) == "" {
				continue
			}
			if _, err := r.db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
		}
	}
	return nil
}

func (r *Repo) UpsertCity(ctx context.Context, pos int, c domain.City) error {
	_, err := r.db.ExecContext(ctx, upsertCitySQL, c.ID, pos, c.Name, nullStr(c.Image))
	return err
}

// UpsertHotel writes the hotel row and replaces its rooms in one transaction.
func (r *Repo) UpsertHotel(ctx context.Context, pos int, h domain.Hotel) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertHotelSQL,
		h.ID,
		pos,
		h.Name,
		h.Location,
		h.City,
		h.Region,
		h.Country,
		nullStr(h.Description),
		nullStr(h.ShortDescription),
		nullStr(h.Image),
		h.Rating,
		h.PriceFrom,
		jsonList(h.Amenities),
		nullStr(h.Contact.Phone),
		nullStr(h.Contact.Email),
		nullStr(h.Contact.Address),
		h.Coordinates.Lat,
		h.Coordinates.Lng,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, deleteRoomsSQL, h.ID); err != nil {
		return err
	}
	if len(h.Rooms) > 0 {
		values := make([]string, 0, len(h.Rooms))
		args := make([]any, 0, len(h.Rooms)*10) // 10 params per row
		for i, rm := range h.Rooms {
			values = append(values, "(?,?,?,?,?,?,?,?,?,?)")
			args = append(args,
				h.ID,
				rm.ID,
				i,
				rm.Name,
				nullStr(rm.Description),
				rm.PricePerNight,
				rm.MaxGuests,
				nullStr(rm.Size),
				jsonList(rm.Amenities),
				nullStr(rm.Image),
			)
		}
		if _, err := tx.ExecContext(ctx, insertRoomsPrefix+strings.Join(values, ","), args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) UpsertRestaurant(ctx context.Context, pos int, rs domain.Restaurant) error {
	_, err := r.db.ExecContext(ctx, upsertRestaurantSQL,
		rs.ID,
		pos,
		rs.Name,
		rs.City,
		nullStr(rs.Cuisine),
		nullStr(rs.Description),
		nullStr(rs.Image),
		nullStr(rs.PriceRange),
	)
	return err
}

// LoadCatalog reads every table back in catalog order. Editorial content is
// not stored in MySQL, so Content comes back empty.
func (r *Repo) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var (
		c   domain.Catalog
		err error
	)
	if c.Cities, err = r.loadCities(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("cities: %w", err)
	}
	if c.Hotels, err = r.loadHotels(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("hotels: %w", err)
	}
	if c.Restaurants, err = r.loadRestaurants(ctx); err != nil {
		return domain.Catalog{}, fmt.Errorf("restaurants: %w", err)
	}
	return c, nil
}

func (r *Repo) loadCities(ctx context.Context) ([]domain.City, error) {
	rows, err := r.db.QueryContext(ctx, selectCitiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.City{}
	for rows.Next() {
		var c domain.City
		var image sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &image); err != nil {
			return nil, err
		}
		c.Image = image.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) loadHotels(ctx context.Context) ([]domain.Hotel, error) {
	rooms, err := r.loadRooms(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, selectHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		var h domain.Hotel
		var desc, short, image, phone, email, addr sql.NullString
		var lat, lng sql.NullFloat64
		var amenities []byte
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Location, &h.City, &h.Region, &h.Country,
			&desc, &short, &image,
			&h.Rating, &h.PriceFrom, &amenities,
			&phone, &email, &addr,
			&lat, &lng,
		); err != nil {
			return nil, err
		}
		h.Description = desc.String
		h.ShortDescription = short.String
		h.Image = image.String
		h.Amenities = decodeList(amenities)
		h.Contact = domain.Contact{Phone: phone.String, Email: email.String, Address: addr.String}
		h.Coordinates = domain.Coords{Lat: lat.Float64, Lng: lng.Float64}
		h.Rooms = rooms[h.ID]
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) loadRooms(ctx context.Context) (map[string][]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, selectRoomsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]domain.Room{}
	for rows.Next() {
		var hotelID string
		var rm domain.Room
		var desc, size, image sql.NullString
		var amenities []byte
		if err := rows.Scan(&hotelID, &rm.ID, &rm.Name, &desc, &rm.PricePerNight, &rm.MaxGuests, &size, &amenities, &image); err != nil {
			return nil, err
		}
		rm.Description = desc.String
		rm.Size = size.String
		rm.Image = image.String
		rm.Amenities = decodeList(amenities)
		out[hotelID] = append(out[hotelID], rm)
	}
	return out, rows.Err()
}

func (r *Repo) loadRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, selectRestaurantsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Restaurant{}
	for rows.Next() {
		var rs domain.Restaurant
		var cuisine, desc, image, price sql.NullString
		if err := rows.Scan(&rs.ID, &rs.Name, &rs.City, &cuisine, &desc, &image, &price); err != nil {
			return nil, err
		}
		rs.Cuisine = cuisine.String
		rs.Description = desc.String
		rs.Image = image.String
		rs.PriceRange = price.String
		out = append(out, rs)
	}
	return out, rows.Err()
}
