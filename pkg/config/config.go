package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string
	LogLevel string

	CartHTTPPort    int
	CatalogHTTPPort int

	CatalogURL     string
	CatalogTimeout time.Duration

	// StoreBackend selects the durable cart store: "badger" or "redis".
	StoreBackend string
	BadgerPath   string
	RedisAddr    string

	SeedFile string

	NotifyBuffer    int
	ShutdownTimeout time.Duration
}

// Load resolves configuration in three layers: built-in defaults, an
// optional YAML file named by CONFIG_FILE, then environment overrides.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)

	return cfg, nil
}

func defaults() Config {
	return Config{
		AppEnv:          "dev",
		LogLevel:        "info",
		CartHTTPPort:    8080,
		CatalogHTTPPort: 3333,
		CatalogURL:      "http://localhost:3333",
		CatalogTimeout:  5 * time.Second,
		StoreBackend:    "badger",
		BadgerPath:      "data/cart",
		RedisAddr:       "localhost:6379",
		NotifyBuffer:    50,
		ShutdownTimeout: 10 * time.Second,
	}
}

// configFile mirrors the YAML schema; it stays separate from Config so the
// file layout can evolve without leaking into callers.
type configFile struct {
	Service struct {
		Env      string `yaml:"env"`
		LogLevel string `yaml:"log_level"`
	} `yaml:"service"`
	HTTP struct {
		CartPort    int `yaml:"cart_port"`
		CatalogPort int `yaml:"catalog_port"`
	} `yaml:"http"`
	Catalog struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		SeedFile       string `yaml:"seed_file"`
	} `yaml:"catalog"`
	Store struct {
		Backend    string `yaml:"backend"`
		BadgerPath string `yaml:"badger_path"`
		RedisAddr  string `yaml:"redis_addr"`
	} `yaml:"store"`
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.AppEnv, f.Service.Env)
	setString(&cfg.LogLevel, f.Service.LogLevel)
	setInt(&cfg.CartHTTPPort, f.HTTP.CartPort)
	setInt(&cfg.CatalogHTTPPort, f.HTTP.CatalogPort)
	setString(&cfg.CatalogURL, f.Catalog.URL)
	if f.Catalog.TimeoutSeconds > 0 {
		cfg.CatalogTimeout = time.Duration(f.Catalog.TimeoutSeconds) * time.Second
	}
	setString(&cfg.SeedFile, f.Catalog.SeedFile)
	setString(&cfg.StoreBackend, f.Store.Backend)
	setString(&cfg.BadgerPath, f.Store.BadgerPath)
	setString(&cfg.RedisAddr, f.Store.RedisAddr)

	return nil
}

func applyEnv(cfg *Config) {
	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.CartHTTPPort = getEnvInt("CART_HTTP_PORT", cfg.CartHTTPPort)
	cfg.CatalogHTTPPort = getEnvInt("CATALOG_HTTP_PORT", cfg.CatalogHTTPPort)
	cfg.CatalogURL = getEnv("CATALOG_URL", cfg.CatalogURL)
	if sec := getEnvInt("CATALOG_TIMEOUT_SECONDS", 0); sec > 0 {
		cfg.CatalogTimeout = time.Duration(sec) * time.Second
	}
	cfg.StoreBackend = getEnv("STORE_BACKEND", cfg.StoreBackend)
	cfg.BadgerPath = getEnv("BADGER_PATH", cfg.BadgerPath)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.SeedFile = getEnv("SEED_FILE", cfg.SeedFile)
	cfg.NotifyBuffer = getEnvInt("NOTIFY_BUFFER", cfg.NotifyBuffer)
	if sec := getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 0); sec > 0 {
		cfg.ShutdownTimeout = time.Duration(sec) * time.Second
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
