package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process-wide configuration, built once at startup and passed
// by injection to every component that needs it.
type Config struct {
	AppName string
	Host    string
	Port    string

	DatabaseURL        string
	DatabaseReplicaURL string

	JWTSecret       string
	JWTAlgorithm    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	BasicAuthUsername string
	BasicAuthPassword string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AcceptedOrigins []string
}

// Load builds a Config from the environment.
func Load() (*Config, error) {
	env := environ()

	dbURL := GetString(env, "DATABASE_URL", "")
	if dbURL == "" {
		var err error
		dbURL, err = assembleDatabaseURL(env)
		if err != nil {
			return nil, err
		}
	}

	secret := GetString(env, "JWT_SECRET_KEY", "")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	cfg := &Config{
		AppName: GetString(env, "APP_NAME", "bloghive"),
		Host:    GetString(env, "APP_HOST", "0.0.0.0"),
		Port:    GetString(env, "APP_PORT", "8080"),

		DatabaseURL:        dbURL,
		DatabaseReplicaURL: GetString(env, "DATABASE_REPLICA_URL", ""),

		JWTSecret:       secret,
		JWTAlgorithm:    GetString(env, "JWT_ALGORITHM", "HS256"),
		AccessTokenTTL:  time.Duration(GetInt(env, "ACCESS_TOKEN_EXP", 30)) * time.Minute,
		RefreshTokenTTL: time.Duration(GetInt(env, "REFRESH_TOKEN_EXP", 7)) * 24 * time.Hour,

		BasicAuthUsername: GetString(env, "BASIC_USERNAME", ""),
		BasicAuthPassword: GetString(env, "BASIC_PASSWORD", ""),

		ReadTimeout:  time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 60)) * time.Second,
		WriteTimeout: time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second,
		IdleTimeout:  time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second,

		AcceptedOrigins: splitList(GetString(env, "ACCEPTED_ORIGINS", "*")),
	}

	return cfg, nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// assembleDatabaseURL builds a postgres DSN from discrete connection
// parameters when DATABASE_URL is not set directly.
func assembleDatabaseURL(env map[string]string) (string, error) {
	user := GetString(env, "DATABASE_USER", "")
	password := GetString(env, "DATABASE_PASSWORD", "")
	host := GetString(env, "DATABASE_HOST", "")
	port := GetString(env, "DATABASE_PORT", "5432")
	name := GetString(env, "DATABASE_NAME", "")

	if user == "" || password == "" || host == "" || name == "" {
		return "", fmt.Errorf("incomplete database connection information")
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name), nil
}

func environ() map[string]string {
	entries := os.Environ()
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry != "" {
			key, value := split(entry)
			env[key] = value
		}
	}
	return env
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
