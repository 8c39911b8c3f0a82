package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const WildcardOrigin = "*"

type Config struct {
	App     App
	MongoDB MongoDB
	Admin   Admin
	Jobs    Jobs
}

type App struct {
	Env                string        `env:"APP_ENV,default=development"`
	Port               string        `env:"PORT,default=5000"`
	LogLevel           string        `env:"LOG_LEVEL,default=info"`
	CORSOrigins        string        `env:"CORS_ORIGINS,default=http://localhost:3000"`
	RateLimitPerSecond int           `env:"RATE_LIMIT_PER_SECOND,default=0"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

type MongoDB struct {
	URI                    string        `env:"MONGODB_URI,default=mongodb://localhost:27017"`
	Database               string        `env:"MONGODB_DATABASE,default=clinicdesk"`
	MinPoolSize            uint64        `env:"MONGODB_MIN_POOL_SIZE,default=0"`
	MaxPoolSize            uint64        `env:"MONGODB_MAX_POOL_SIZE,default=100"`
	ServerSelectionTimeout time.Duration `env:"MONGODB_SERVER_SELECTION_TIMEOUT,default=30s"`
	RetryWrites            bool          `env:"MONGODB_RETRY_WRITES,default=true"`
	WriteConcern           string        `env:"MONGODB_WRITE_CONCERN,default=majority"`
}

// Admin holds both ways an administrator can sign in: the literal shortcut
// credentials and the privileged account seeded into the store.
type Admin struct {
	ShortcutEnabled  bool   `env:"ADMIN_SHORTCUT_ENABLED,default=true"`
	ShortcutEmail    string `env:"ADMIN_SHORTCUT_EMAIL,default=admin"`
	ShortcutPassword string `env:"ADMIN_SHORTCUT_PASSWORD,default=admin123"`
	SeedUsername     string `env:"ADMIN_SEED_USERNAME"`
	SeedEmail        string `env:"ADMIN_SEED_EMAIL"`
	SeedPassword     string `env:"ADMIN_SEED_PASSWORD"`
}

type Jobs struct {
	MetricsLogSchedule string `env:"METRICS_LOG_SCHEDULE,default=@every 5m"`
}

/*
* Load the .env file if present
* Decode the environment into Config
* Validate before anybody starts using it
 */
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := strconv.ParseUint(c.App.Port, 10, 16); err != nil {
		return fmt.Errorf("invalid PORT %q", c.App.Port)
	}
	switch strings.ToLower(c.App.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.App.LogLevel)
	}
	if c.App.RateLimitPerSecond < 0 {
		return errors.New("RATE_LIMIT_PER_SECOND must not be negative")
	}
	if strings.TrimSpace(c.MongoDB.URI) == "" {
		return errors.New("MONGODB_URI is required")
	}
	if strings.TrimSpace(c.MongoDB.Database) == "" {
		return errors.New("MONGODB_DATABASE is required")
	}
	if c.MongoDB.MinPoolSize > c.MongoDB.MaxPoolSize {
		return fmt.Errorf("MONGODB_MIN_POOL_SIZE (%d) exceeds MONGODB_MAX_POOL_SIZE (%d)", c.MongoDB.MinPoolSize, c.MongoDB.MaxPoolSize)
	}
	if c.MongoDB.WriteConcern != "majority" {
		if n, err := strconv.Atoi(c.MongoDB.WriteConcern); err != nil || n < 0 {
			return fmt.Errorf("invalid MONGODB_WRITE_CONCERN %q", c.MongoDB.WriteConcern)
		}
	}
	if _, err := ParseOrigins(c.App.CORSOrigins); err != nil {
		return err
	}
	if c.Admin.ShortcutEnabled && (c.Admin.ShortcutEmail == "" || c.Admin.ShortcutPassword == "") {
		return errors.New("admin shortcut enabled without credentials")
	}
	return nil
}

// AllowedOrigins returns the validated CORS allow-list.
func (c *Config) AllowedOrigins() []string {
	origins, _ := ParseOrigins(c.App.CORSOrigins)
	return origins
}

func (c *Config) SeedAdminConfigured() bool {
	return c.Admin.SeedUsername != "" && c.Admin.SeedEmail != "" && c.Admin.SeedPassword != ""
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

/*
* Split the comma separated list
* A wildcard must stand alone
* Everything else must be an absolute http(s) origin without a path
 */
func ParseOrigins(raw string) ([]string, error) {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		origin := strings.TrimSpace(part)
		if origin == "" {
			continue
		}
		origins = append(origins, strings.TrimRight(origin, "/"))
	}
	if len(origins) == 0 {
		return nil, errors.New("CORS_ORIGINS must list at least one origin")
	}

	for _, origin := range origins {
		if origin == WildcardOrigin {
			if len(origins) > 1 {
				return nil, errors.New("CORS_ORIGINS wildcard cannot be combined with other origins")
			}
			continue
		}
		u, err := url.Parse(origin)
		if err != nil {
			return nil, fmt.Errorf("invalid CORS origin %q: %w", origin, err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("invalid CORS origin %q: expected http(s)://host[:port]", origin)
		}
		if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
			return nil, fmt.Errorf("invalid CORS origin %q: must not contain a path", origin)
		}
	}
	return origins, nil
}
