package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type RateLimitConfig struct {
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

type Config struct {
	Env        string          `yaml:"env"`
	ListenAddr string          `yaml:"listen_addr"`
	Redis      RedisConfig     `yaml:"redis"`
	RateLimit  RateLimitConfig `yaml:"rate_limit"`
}

// Load reads an optional YAML config file, applies environment overrides,
// then fills defaults. A missing file is fine; a malformed one is an error.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env + defaults
		case err != nil:
			return Config{}, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Env = getEnv("ENV", c.Env)
	c.ListenAddr = getEnv("BUDGETPILOT_ADDR", c.ListenAddr)
	c.Redis.Enabled = getEnvBool("REDIS_ENABLED", c.Redis.Enabled)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.TTLSeconds = getEnvInt("REDIS_TTL_SECONDS", c.Redis.TTLSeconds)
	c.RateLimit.Requests = getEnvInt("RATE_LIMIT_REQUESTS", c.RateLimit.Requests)
	c.RateLimit.WindowSeconds = getEnvInt("RATE_LIMIT_WINDOW_SECONDS", c.RateLimit.WindowSeconds)
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "production"
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.TTLSeconds <= 0 {
		c.Redis.TTLSeconds = 300
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = 5
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		return strings.ToLower(val) == "true" || val == "1"
	}
	return defaultVal
}
