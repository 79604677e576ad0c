// Package config loads runtime configuration from environment
// variables. The main Config covers the server, database and access
// policy; the cache, rate-limit and Redis settings have their own
// loaders in this package because they can be toggled independently.
package config

import (
	"log"
	"os"
)

// Config holds the core runtime configuration. Every field corresponds
// to an environment variable; optional values fall back to development
// defaults so a bare `go run` against a local MySQL works.
type Config struct {
	Env        string // APP_ENV: application environment (development/production)
	Port       string // APP_PORT: HTTP port to listen on
	CORSOrigin string // CORS_ORIGIN: the single allowed browser origin
	DBUser     string // DB_USER
	DBPass     string // DB_PASS (empty allowed)
	DBHost     string // DB_HOST
	DBPort     string // DB_PORT
	DBName     string // DB_NAME
	// Timezone is the IANA zone used to derive "today" and "now" for
	// occupancy and upcoming-booking queries. It is explicit
	// configuration so results do not depend on the host clock's zone.
	Timezone string // APP_TIMEZONE
	// AccessCheckStrict selects how an empty username on the access
	// check is treated: true rejects the request as invalid, false
	// treats it as an unknown user and simply denies access.
	AccessCheckStrict bool // ACCESS_CHECK_STRICT
}

// Load reads the core configuration. Database coordinates are required;
// everything else has a default.
func Load() Config {
	return Config{
		Env:               envStr("APP_ENV", "development"),
		Port:              envStr("APP_PORT", "4000"),
		CORSOrigin:        envStr("CORS_ORIGIN", "http://localhost:3000"),
		DBUser:            must("DB_USER"),
		DBPass:            os.Getenv("DB_PASS"),
		DBHost:            must("DB_HOST"),
		DBPort:            must("DB_PORT"),
		DBName:            must("DB_NAME"),
		Timezone:          envStr("APP_TIMEZONE", "Local"),
		AccessCheckStrict: envBool("ACCESS_CHECK_STRICT", true),
	}
}

// must retrieves a required environment variable. A missing value is a
// deployment error, so the process exits with a fatal log message.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
