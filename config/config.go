package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// HRNames is the configured HR committee list. When empty, reviewer
	// names fall back to members of the HR department.
	HRNames []string

	// ReferenceCacheTTL bounds staleness of the members/tasks cache.
	ReferenceCacheTTL time.Duration
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	ttl := 60
	if v, err := strconv.Atoi(get("REFERENCE_CACHE_TTL_SECONDS", "60")); err == nil && v > 0 {
		ttl = v
	}

	var names []string
	for _, n := range strings.Split(get("HR_NAMES", ""), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "hoursledger"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		HRNames:           names,
		ReferenceCacheTTL: time.Duration(ttl) * time.Second,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
