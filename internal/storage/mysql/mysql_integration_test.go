//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kennedia_site/internal/app"
	"kennedia_site/internal/catalog"
	"kennedia_site/internal/domain"
	mysqlrepo "kennedia_site/internal/storage/mysql"
)

// startMySQL runs an isolated MySQL container; Docker picks the host port.
func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=kennedia",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run mysql")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/kennedia?parseTime=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	require.NoError(t, pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}), "connect mysql")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_SeedAndLoadRoundTrip(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()
	repo := mysqlrepo.New(db)
	require.NoError(t, repo.Migrate(ctx))
	require.NoError(t, repo.Migrate(ctx), "migrations must be re-runnable")

	seed, err := catalog.LoadSeed()
	require.NoError(t, err)

	rep, err := app.NewSeedService(repo, 4).Seed(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Hotels), rep.Hotels)

	// seeding twice is an upsert, not a duplicate
	_, err = app.NewSeedService(repo, 4).Seed(ctx, seed)
	require.NoError(t, err)

	got, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, got.Hotels, len(seed.Hotels))
	require.Len(t, got.Cities, len(seed.Cities))
	require.Len(t, got.Restaurants, len(seed.Restaurants))

	// catalog order survives concurrent writes
	for i := range seed.Hotels {
		assert.Equal(t, seed.Hotels[i].ID, got.Hotels[i].ID)
	}
	blr := got.Hotels[0]
	assert.Equal(t, "kennedia-bangalore", blr.ID)
	require.Len(t, blr.Rooms, 2)
	assert.Equal(t, "deluxe-king", blr.Rooms[0].ID)
	assert.Equal(t, int64(25000), blr.Rooms[1].PricePerNight)
	assert.Equal(t, seed.Hotels[0].Amenities, blr.Amenities)
	assert.InDelta(t, 12.9716, blr.Coordinates.Lat, 1e-6)

	// the loaded rows serve the same queries as the seed
	store := catalog.New(got)
	hs, err := store.ListHotels(ctx, domain.HotelFilter{City: "bangalore"})
	require.NoError(t, err)
	assert.Len(t, hs, 2)
	ch, err := store.GetHotel(ctx, "kennedia-chennai")
	require.NoError(t, err)
	assert.Equal(t, "chennai", ch.City)
}

func TestRefresher_FromMySQL(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()
	repo := mysqlrepo.New(db)
	require.NoError(t, repo.Migrate(ctx))

	seed, err := catalog.LoadSeed()
	require.NoError(t, err)
	_, err = app.NewSeedService(repo, 2).Seed(ctx, seed)
	require.NoError(t, err)

	require.NoError(t, repo.UpsertCity(ctx, 99, domain.City{ID: "chennai", Name: "Chennai"}))

	store := catalog.New(seed)
	_, err = app.NewRefresher(repo, store).Refresh(ctx)
	require.NoError(t, err)

	c, err := store.GetCity(ctx, "chennai")
	require.NoError(t, err)
	assert.Equal(t, "Chennai", c.Name)
	content, _ := store.Content(ctx)
	assert.NotEmpty(t, content.Slides, "editorial content is kept across refreshes")
}
