package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "risq-development-session-secret!"

// Provider exposes read-only configuration to handlers and modules.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSubmitDelay() time.Duration
	GetFormRateLimit() float64
	GetEnvironment() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string
	AppBaseURL    string
	SessionSecret string
	SubmitDelay   time.Duration
	FormRateLimit float64
	Environment   string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment without reading .env.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SubmitDelay:   getDuration("QA_SUBMIT_DELAY", time.Second),
		FormRateLimit: getFloat("FORM_RATE_LIMIT", 10),
		Environment:   getEnv("APP_ENV", "development"),
	}

	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using the development secret")
		cfg.SessionSecret = devSessionSecret
	}

	if !strings.Contains(cfg.ServerAddr, ":") {
		cfg.ServerAddr = ":" + cfg.ServerAddr
	}

	return cfg
}

func (c *Config) GetServerAddr() string         { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string         { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string      { return c.SessionSecret }
func (c *Config) GetSubmitDelay() time.Duration { return c.SubmitDelay }
func (c *Config) GetFormRateLimit() float64     { return c.FormRateLimit }
func (c *Config) GetEnvironment() string        { return c.Environment }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		log.Printf("Invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
