package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	EnvLocal = "Local"
	EnvDev   = "Development"
	EnvProd  = "Production"
)

var (
	ErrEmptyPath        = errors.New("CONFIG_PATH is not set")
	ErrInvalidRateLimit = errors.New("rate limit needs at least one request per positive window")
)

type Server struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	Timeout time.Duration `yaml:"timeout"`
}

type Database struct {
	Host     string `yaml:"host"`
	Port     uint16 `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// HTTP.CORSOrigins lists the allowed origins. "*" allows any origin
// without credentials.
type HTTP struct {
	Timeout       time.Duration `yaml:"timeout"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	MaxUploadSize int64         `yaml:"max_upload_size"`
	CORSOrigins   []string      `yaml:"cors_origins"`
}

type JWT struct {
	SecretKey           string        `yaml:"secret_key"`
	Algorithm           string        `yaml:"algorithm"`
	AccessExpires       time.Duration `yaml:"access_token_expires"`
	RefreshExpires      time.Duration `yaml:"refresh_token_expires"`
	VerificationExpires time.Duration `yaml:"verification_token_expires"`
	ResetExpires        time.Duration `yaml:"reset_token_expires"`
}

type Email struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	From     string `yaml:"from"`
	Password string `yaml:"password"`
}

// Storage points at an S3 compatible bucket for avatars. An empty Bucket
// selects the in-process mock storage.
type Storage struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PublicURL string `yaml:"public_url"`
}

// Redis is optional. Without an address the rate limiter stays in memory
// and users are not cached.
type Redis struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// RateLimit.TrustProxy keys clients on X-Forwarded-For and X-Real-IP. Enable
// it only behind a proxy that sets those headers.
type RateLimit struct {
	Requests   int           `yaml:"requests"`
	Window     time.Duration `yaml:"window"`
	TrustProxy bool          `yaml:"trust_proxy"`
}

type App struct {
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	Env       string    `yaml:"env"`
	Server    Server    `yaml:"server"`
	Database  Database  `yaml:"database"`
	Email     Email     `yaml:"email"`
	HTTP      HTTP      `yaml:"http"`
	JWT       JWT       `yaml:"jwt"`
	Storage   Storage   `yaml:"storage"`
	Redis     Redis     `yaml:"redis"`
	RateLimit RateLimit `yaml:"rate_limit"`
	App       App       `yaml:"app"`
}

// Defaults returns the configuration used for every key the file leaves out.
func Defaults() Config {
	return Config{
		Env: EnvLocal,
		Server: Server{
			Host:    "localhost",
			Port:    8000,
			Timeout: 10 * time.Second,
		},
		Database: Database{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
		HTTP: HTTP{
			Timeout:       5 * time.Second,
			IdleTimeout:   60 * time.Second,
			MaxUploadSize: 5 << 20,
			CORSOrigins:   []string{"*"},
		},
		JWT: JWT{
			Algorithm:           "HS256",
			AccessExpires:       30 * time.Minute,
			RefreshExpires:      7 * 24 * time.Hour,
			VerificationExpires: 24 * time.Hour,
			ResetExpires:        60 * time.Minute,
		},
		Storage: Storage{
			Region: "us-east-1",
		},
		Redis: Redis{
			CacheTTL: 15 * time.Minute,
		},
		RateLimit: RateLimit{
			Requests: 60,
			Window:   time.Minute,
		},
		App: App{
			BaseURL: "http://localhost:8000",
		},
	}
}

func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("Can not to load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	if configPath == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyPath)
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("%s: Can not to find config file: %w", op, err)
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("%s: Can not to open config file: %w", op, err)
	}
	defer file.Close()

	cfg := Defaults()

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: Can not to read config file: %w", op, err)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.SecretKey = secret
	}

	if cfg.RateLimit.Requests < 1 || cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("%s: %w: %d per %s", op, ErrInvalidRateLimit,
			cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	return &cfg, nil
}
