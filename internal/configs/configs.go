/*
Package configs is responsible for loading and parsing the application's configuration settings.

It primarily configures server parameters by reading operating system environment variables,
including the running environment, port, CORS allowed origins, the authentication backend
base URL, and rate limiting for the login trigger.
*/
package configs

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string

	// Backend Settings
	BackendBaseURL string

	// Login trigger rate limiting (per client IP)
	LoginRate  float64
	LoginBurst int
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for each configuration item and performs necessary type conversions and validation.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	// Environment
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Port
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	// AllowedOrigins
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	// --- Backend Settings ---
	// BackendBaseURL is the single configuration input of the login flow: the base
	// URL of the remote authentication backend, read once at startup.
	backendBaseURL := os.Getenv("BACKEND_BASE_URL")
	if backendBaseURL == "" {
		if cfg.Environment == "development" {
			backendBaseURL = "http://localhost:3000"
		} else {
			return nil, fmt.Errorf("BACKEND_BASE_URL environment variable is required in %s environment", cfg.Environment)
		}
	}
	parsed, err := url.Parse(backendBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid BACKEND_BASE_URL %q: must be an absolute http(s) URL", backendBaseURL)
	}
	cfg.BackendBaseURL = strings.TrimRight(backendBaseURL, "/")

	// --- Login trigger rate limiting ---
	rateStr := os.Getenv("LOGIN_RATE")
	if rateStr == "" {
		rateStr = "0.5"
	}
	loginRate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || loginRate <= 0 {
		return nil, fmt.Errorf("invalid LOGIN_RATE environment variable: %q", rateStr)
	}
	cfg.LoginRate = loginRate

	burstStr := os.Getenv("LOGIN_BURST")
	if burstStr == "" {
		burstStr = "5"
	}
	loginBurst, err := strconv.Atoi(burstStr)
	if err != nil || loginBurst < 1 {
		return nil, fmt.Errorf("invalid LOGIN_BURST environment variable: %q", burstStr)
	}
	cfg.LoginBurst = loginBurst

	return cfg, nil
}
