package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Credential store backends.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendMongo    = "mongo"
	BackendMemory   = "memory"
	BackendDetached = "detached"
)

// Config is the console configuration.
type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// APIURL is the backend origin; endpoint paths carry the /api/v1 prefix.
	APIURL string `env:"API_URL, default=http://localhost:8080"`

	Credentials CredentialsConfig
	Mongo       MongoConfig
	Redis       RedisConfig
}

type CredentialsConfig struct {
	Backend string `env:"CREDENTIALS_BACKEND, default=file"`
	// Dir holds the file backend's data. Empty means ~/.restaurant-console.
	Dir     string `env:"CREDENTIALS_DIR"`
	Profile string `env:"CREDENTIALS_PROFILE, default=default"`
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=restaurant_console"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

// Development reports whether the console runs in development mode.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// CredentialsDir resolves the file backend directory. It returns "" when no
// home directory is available, which leaves the file store detached.
func (c *Config) CredentialsDir() string {
	if c.Credentials.Dir != "" {
		return c.Credentials.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".restaurant-console")
}

// FakeAPIConfig configures cmd/fakeapi.
type FakeAPIConfig struct {
	Port       string        `env:"FAKEAPI_PORT,        default=8080"`
	LogLevel   string        `env:"LOG_LEVEL,           default=info"`
	JWTSecret  string        `env:"FAKEAPI_JWT_SECRET,  default=dev-secret"`
	AccessTTL  time.Duration `env:"FAKEAPI_ACCESS_TTL,  default=15m"`
	RefreshTTL time.Duration `env:"FAKEAPI_REFRESH_TTL, default=168h"`

	SeedEmail    string `env:"FAKEAPI_SEED_EMAIL,    default=admin@example.com"`
	SeedPassword string `env:"FAKEAPI_SEED_PASSWORD, default=admin123"`
}

// Load reads the console configuration from the environment using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadFakeAPI reads the fake backend configuration.
func LoadFakeAPI() *FakeAPIConfig {
	var cfg FakeAPIConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load fake api configuration: %v", err))
	}
	return &cfg
}
