package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

type Config struct {
	Env         string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTP        HTTPConfig     `yaml:"http"`
	TopicSource string         `yaml:"topic_source" env:"TOPIC_SOURCE" env-default:"memory"`
	Postgres    PostgresConfig `yaml:"postgres"`
	Session     SessionConfig  `yaml:"session"`
	// ProfileSeed fixes the nickname generator; 0 means random.
	ProfileSeed uint64 `yaml:"profile_seed" env:"PROFILE_SEED" env-default:"0"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"30s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	SecureCookies   bool          `yaml:"secure_cookies" env:"HTTP_SECURE_COOKIES" env-default:"false"`
}

type PostgresConfig struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"db_name" env:"POSTGRES_DB"`
	SSLMode  string `yaml:"ssl_mode" env:"POSTGRES_SSLMODE" env-default:"disable"`
}

type SessionConfig struct {
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"30m"`
}

func (p PostgresConfig) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode)
}

func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads .env when present, then the YAML file at path (if any) and the
// environment on top of it.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("could not load .env: %v", err)
	}

	var cfg Config
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.TopicSource {
	case SourceMemory:
	case SourcePostgres:
		if c.Postgres.DBName == "" || c.Postgres.User == "" {
			return fmt.Errorf("topic source %q requires POSTGRES_DB and POSTGRES_USER", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown topic source %q", c.TopicSource)
	}
	if c.HTTP.Port <= 0 {
		return fmt.Errorf("invalid HTTP port %d", c.HTTP.Port)
	}
	return nil
}
