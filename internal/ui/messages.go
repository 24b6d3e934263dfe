package ui

import (
	"go-weather/internal/domain/entity"
)

// Message types for async operations

// weatherLoadedMsg is sent when a fetch started with sequence number seq completes
type weatherLoadedMsg struct {
	seq     uint64
	records []entity.WeatherRecord
	err     error
}

// autoRefreshMsg fires on every refresh interval
type autoRefreshMsg struct{}

// connectivityMsg reports the result of a reachability probe
type connectivityMsg struct {
	online bool
}
