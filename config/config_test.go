package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App: App{
			Env:         "development",
			Port:        "5000",
			LogLevel:    "info",
			CORSOrigins: "http://localhost:3000",
		},
		MongoDB: MongoDB{
			URI:          "mongodb://localhost:27017",
			Database:     "clinicdesk",
			MaxPoolSize:  100,
			WriteConcern: "majority",
		},
		Admin: Admin{
			ShortcutEnabled:  true,
			ShortcutEmail:    "admin",
			ShortcutPassword: "admin123",
		},
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, http://localhost:3000/")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_MAX_POOL_SIZE", "20")
	t.Setenv("MONGODB_SERVER_SELECTION_TIMEOUT", "5s")
	t.Setenv("MONGODB_WRITE_CONCERN", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoDB.URI)
	assert.Equal(t, uint64(20), cfg.MongoDB.MaxPoolSize)
	assert.Equal(t, 5*time.Second, cfg.MongoDB.ServerSelectionTimeout)
	assert.Equal(t, "1", cfg.MongoDB.WriteConcern)
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:3000"}, cfg.AllowedOrigins())
}

func TestLoad_RejectsInvalidOrigin(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "localhost:3000")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "non numeric port", mutate: func(c *Config) { c.App.Port = "http" }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.App.LogLevel = "loud" }, wantErr: true},
		{name: "pool min above max", mutate: func(c *Config) { c.MongoDB.MinPoolSize = 200 }, wantErr: true},
		{name: "numeric write concern", mutate: func(c *Config) { c.MongoDB.WriteConcern = "2" }},
		{name: "bogus write concern", mutate: func(c *Config) { c.MongoDB.WriteConcern = "all" }, wantErr: true},
		{name: "empty database", mutate: func(c *Config) { c.MongoDB.Database = " " }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.App.RateLimitPerSecond = -1 }, wantErr: true},
		{name: "shortcut without password", mutate: func(c *Config) { c.Admin.ShortcutPassword = "" }, wantErr: true},
		{name: "shortcut disabled without password", mutate: func(c *Config) {
			c.Admin.ShortcutEnabled = false
			c.Admin.ShortcutPassword = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "single", raw: "http://localhost:3000", want: []string{"http://localhost:3000"}},
		{name: "wildcard", raw: "*", want: []string{"*"}},
		{name: "trims slashes and blanks", raw: " https://a.example.com/ ,,https://b.example.com", want: []string{"https://a.example.com", "https://b.example.com"}},
		{name: "empty", raw: " , ", wantErr: true},
		{name: "wildcard mixed", raw: "*,http://localhost:3000", wantErr: true},
		{name: "missing scheme", raw: "example.com", wantErr: true},
		{name: "ftp scheme", raw: "ftp://example.com", wantErr: true},
		{name: "with path", raw: "https://example.com/app", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrigins(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeedAdminConfigured(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.SeedAdminConfigured())

	cfg.Admin.SeedUsername = "root"
	cfg.Admin.SeedEmail = "root@clinic.example"
	assert.False(t, cfg.SeedAdminConfigured())

	cfg.Admin.SeedPassword = "S3cure!pass"
	assert.True(t, cfg.SeedAdminConfigured())
}
