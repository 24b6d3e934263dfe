package ui

import (
	"time"

	"go-weather/pkg/resource"
)

// Config holds the dashboard timings and layout thresholds.
type Config struct {
	AggregatorURL        string
	RefreshInterval      time.Duration
	ConnectivityInterval time.Duration
	RequestTimeout       time.Duration
	// NarrowBreakpoint is the terminal width (columns) below which cities stack vertically.
	NarrowBreakpoint int
}

func DefaultConfig() Config {
	return Config{
		AggregatorURL:        "http://localhost:8080/api",
		RefreshInterval:      5 * time.Minute,
		ConnectivityInterval: 10 * time.Second,
		RequestTimeout:       15 * time.Second,
		NarrowBreakpoint:     100,
	}
}

// LoadConfig reads the dashboard.* properties, keeping defaults for unset keys.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if url := resource.GetString("dashboard.aggregator-url"); url != "" {
		cfg.AggregatorURL = url
	}
	if d := resource.GetDuration("dashboard.refresh-interval"); d > 0 {
		cfg.RefreshInterval = d
	}
	if d := resource.GetDuration("dashboard.connectivity-interval"); d > 0 {
		cfg.ConnectivityInterval = d
	}
	if d := resource.GetDuration("dashboard.request-timeout"); d > 0 {
		cfg.RequestTimeout = d
	}
	if n := resource.GetInt("dashboard.narrow-breakpoint"); n > 0 {
		cfg.NarrowBreakpoint = n
	}
	return cfg
}
