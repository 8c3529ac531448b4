// Package config loads service configuration from environment variables.
//
// Required values (the Resend API key and the destination address) fail
// loudly at load time rather than surfacing later as a broken send.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// defaultFromAddress is the sender used when CONTACT_EMAIL_FROM is unset.
	// Resend accepts this placeholder on unverified accounts.
	defaultFromAddress = "noreply@resend.dev"
	// defaultRateLimitWindow is the contact-form rate limit window
	defaultRateLimitWindow = 5 * time.Minute
	// defaultRateLimitMax is the number of submissions allowed per window.
	// The contact form is a near-single-submission surface, so one per
	// window is intentional, not a placeholder.
	defaultRateLimitMax = 1
	// defaultSpamMaxURLs is the number of links tolerated in a message
	defaultSpamMaxURLs = 2
)

// emailPattern is the same permissive shape check the form validator uses
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Config holds service configuration
type Config struct {
	Listen          string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodySize     int64

	ResendAPIKey     string
	ContactEmailTo   string
	ContactEmailFrom string

	RateLimitWindow time.Duration
	RateLimitMax    int
	SpamMaxURLs     int
}

var (
	loadOnce sync.Once
	loaded   *Config
	loadErr  error
)

// Load returns the process-wide configuration, resolving and validating it
// on first call and memoizing the result for the process lifetime.
func Load() (*Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = New()
	})

	return loaded, loadErr
}

// New creates a configuration from environment variables, validating
// required values and failing on malformed ones.
func New() (*Config, error) {
	cfg := &Config{
		Listen:           getEnv("SITE_LISTEN", ":8080"),
		ContactEmailFrom: getEnv("CONTACT_EMAIL_FROM", defaultFromAddress),
	}

	apiKey := strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY", ErrMissingEnv)
	}

	cfg.ResendAPIKey = apiKey

	to, err := emailEnv("CONTACT_EMAIL_TO")
	if err != nil {
		return nil, err
	}

	cfg.ContactEmailTo = to

	cfg.ContactEmailFrom = strings.TrimSpace(cfg.ContactEmailFrom)
	if !emailPattern.MatchString(cfg.ContactEmailFrom) {
		return nil, fmt.Errorf("%w: CONTACT_EMAIL_FROM=%q", ErrInvalidEmail, cfg.ContactEmailFrom)
	}

	windowMs, err := intEnv("RATE_LIMIT_WINDOW_MS", int(defaultRateLimitWindow.Milliseconds()))
	if err != nil {
		return nil, err
	}

	cfg.RateLimitWindow = time.Duration(windowMs) * time.Millisecond

	if cfg.RateLimitMax, err = intEnv("RATE_LIMIT_MAX_REQUESTS", defaultRateLimitMax); err != nil {
		return nil, err
	}

	if cfg.SpamMaxURLs, err = intEnv("SPAM_MAX_URLS", defaultSpamMaxURLs); err != nil {
		return nil, err
	}

	if cfg.ReadTimeout, err = durationEnv("SITE_READ_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if cfg.WriteTimeout, err = durationEnv("SITE_WRITE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if cfg.ShutdownTimeout, err = durationEnv("SITE_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	maxBody, err := intEnv("SITE_MAX_BODY_SIZE", 100*1024)
	if err != nil {
		return nil, err
	}

	cfg.MaxBodySize = int64(maxBody)

	return cfg, nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// emailEnv reads a required environment variable and validates it as an
// email address shape compatible with the Resend API
func emailEnv(key string) (string, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, key)
	}

	if !emailPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %s=%q", ErrInvalidEmail, key, value)
	}

	return value, nil
}

// intEnv reads an integer environment variable; a set-but-malformed value is
// an error rather than a silent fallback to the default
func intEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidNumber, key, value)
	}

	return parsed, nil
}

// durationEnv reads a duration environment variable in Go duration syntax
func durationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, value)
	}

	return parsed, nil
}
