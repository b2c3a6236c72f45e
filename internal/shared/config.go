package shared

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	SourceSeed  = "seed"
	SourceMySQL = "mysql"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	CatalogSource   string // seed | mysql
	SeedFile        string // optional YAML overriding the embedded seed
	MySQLDSN        string
	RedisAddr       string // empty: in-process cache
	RedisDB         int
	RedisPass       string
	CacheTTL        time.Duration
	RefreshInterval time.Duration
	SeedWorkers     int
	NewsletterRPS   float64
	NewsletterBurst int
	TrustProxy      bool // honor X-Forwarded-For from a fronting proxy
}

// Load reads the environment. Unset or unparsable values fall back to the
// defaults below.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "prod")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("METRICS_ADDR", ":9100")
	v.SetDefault("CATALOG_SOURCE", SourceSeed)
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("MYSQL_DSN", "root:root@tcp(localhost:3306)/kennedia?parseTime=true&charset=utf8mb4&loc=UTC")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_SECONDS", 900)
	v.SetDefault("REFRESH_INTERVAL_SECONDS", 300)
	v.SetDefault("SEED_WORKERS", 4)
	v.SetDefault("NEWSLETTER_RPS", 0.2)
	v.SetDefault("NEWSLETTER_BURST", 3)
	v.SetDefault("TRUST_PROXY", false)

	c := Config{
		AppEnv:          v.GetString("APP_ENV"),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		MetricsAddr:     v.GetString("METRICS_ADDR"),
		CatalogSource:   strings.ToLower(v.GetString("CATALOG_SOURCE")),
		SeedFile:        v.GetString("SEED_FILE"),
		MySQLDSN:        v.GetString("MYSQL_DSN"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPass:       v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		CacheTTL:        time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		RefreshInterval: time.Duration(v.GetInt("REFRESH_INTERVAL_SECONDS")) * time.Second,
		SeedWorkers:     v.GetInt("SEED_WORKERS"),
		NewsletterRPS:   v.GetFloat64("NEWSLETTER_RPS"),
		NewsletterBurst: v.GetInt("NEWSLETTER_BURST"),
		TrustProxy:      v.GetBool("TRUST_PROXY"),
	}
	if c.CatalogSource != SourceSeed && c.CatalogSource != SourceMySQL {
		log.Warn().Str("CATALOG_SOURCE", c.CatalogSource).Msg("unknown catalog source, using seed")
		c.CatalogSource = SourceSeed
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = 900 * time.Second
	}
	if c.RefreshInterval <= 0 {
		c.RefreshInterval = 300 * time.Second
	}
	if c.NewsletterBurst <= 0 {
		c.NewsletterBurst = 1
	}
	return c
}
