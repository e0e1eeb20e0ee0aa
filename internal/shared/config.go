package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	ParserProvider string // openai | gemini | empty for local-only
	ParserModel    string
	OpenAIKey      string
	GeminiKey      string
	ParserRPS      float64
	ParserTimeout  time.Duration

	RedisAddr string
	RedisPass string
	RedisDB   int

	CatalogSeed int64
	SessionTTL  time.Duration
}

// fileConfig is the optional yaml overlay pointed at by TRIPRECO_CONFIG.
// Set fields override the environment defaults.
type fileConfig struct {
	AppEnv         string  `yaml:"app_env"`
	HTTPAddr       string  `yaml:"http_addr"`
	MetricsAddr    string  `yaml:"metrics_addr"`
	ParserProvider string  `yaml:"parser_provider"`
	ParserModel    string  `yaml:"parser_model"`
	ParserRPS      float64 `yaml:"parser_rps"`
	RedisAddr      string  `yaml:"redis_addr"`
	CatalogSeed    int64   `yaml:"catalog_seed"`
	SessionTTLSec  int     `yaml:"session_ttl_seconds"`
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		ParserProvider: env("PARSER_PROVIDER", ""),
		ParserModel:    env("PARSER_MODEL", ""),
		OpenAIKey:      env("OPENAI_API_KEY", ""),
		GeminiKey:      env("GEMINI_API_KEY", ""),
		ParserRPS:      atof("PARSER_RPS", 1),
		ParserTimeout:  time.Duration(atoi("PARSER_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CatalogSeed:    int64(atoi("CATALOG_SEED", 42)),
		SessionTTL:     time.Duration(atoi("SESSION_TTL_SECONDS", 3600)) * time.Second,
	}

	if path := os.Getenv("TRIPRECO_CONFIG"); path != "" {
		overlayFile(&c, path)
	}

	if c.ParserProvider == "openai" && c.OpenAIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is empty, parser falls back to local heuristics")
	}
	if c.ParserProvider == "gemini" && c.GeminiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is empty, parser falls back to local heuristics")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Warn().Msg("JWT_SECRET is empty")
	}
	return c
}

func overlayFile(c *Config, path string) {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config file unreadable, using env only")
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config file invalid, using env only")
		return
	}
	if fc.AppEnv != "" {
		c.AppEnv = fc.AppEnv
	}
	if fc.HTTPAddr != "" {
		c.HTTPAddr = fc.HTTPAddr
	}
	if fc.MetricsAddr != "" {
		c.MetricsAddr = fc.MetricsAddr
	}
	if fc.ParserProvider != "" {
		c.ParserProvider = fc.ParserProvider
	}
	if fc.ParserModel != "" {
		c.ParserModel = fc.ParserModel
	}
	if fc.ParserRPS != 0 {
		c.ParserRPS = fc.ParserRPS
	}
	if fc.RedisAddr != "" {
		c.RedisAddr = fc.RedisAddr
	}
	if fc.CatalogSeed != 0 {
		c.CatalogSeed = fc.CatalogSeed
	}
	if fc.SessionTTLSec != 0 {
		c.SessionTTL = time.Duration(fc.SessionTTLSec) * time.Second
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
