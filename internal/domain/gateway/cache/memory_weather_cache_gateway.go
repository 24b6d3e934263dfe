package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

type cacheEntry struct {
	data     external.CurrentWeatherResponse
	storedAt time.Time
}

type memoryWeatherCacheGateway struct {
	mu     sync.RWMutex
	items  map[string]cacheEntry
	ttl    time.Duration
	now    func() time.Time
	hits   int
	misses int
}

// NewMemoryWeatherCacheGateway returns a process-local cache, used when Redis is disabled.
func NewMemoryWeatherCacheGateway(ttl time.Duration) WeatherCacheGateway {
	return newMemoryWeatherCacheGateway(ttl, time.Now)
}

func newMemoryWeatherCacheGateway(ttl time.Duration, now func() time.Time) *memoryWeatherCacheGateway {
	return &memoryWeatherCacheGateway{
		items: make(map[string]cacheEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (m *memoryWeatherCacheGateway) Get(_ context.Context, key string) (*external.CurrentWeatherResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, found := m.items[key]
	if !found || m.now().Sub(entry.storedAt) >= m.ttl {
		if found {
			delete(m.items, key)
		}
		m.misses++
		return nil, false
	}

	m.hits++
	data := entry.data
	data.Weather = append([]external.WeatherDescriptionDTO(nil), entry.data.Weather...)
	return &data, true
}

func (m *memoryWeatherCacheGateway) Set(_ context.Context, key string, value *external.CurrentWeatherResponse) {
	if value == nil {
		return
	}

	data := *value
	data.Weather = append([]external.WeatherDescriptionDTO(nil), value.Weather...)

	m.mu.Lock()
	m.items[key] = cacheEntry{data: data, storedAt: m.now()}
	m.mu.Unlock()
}

func (m *memoryWeatherCacheGateway) Health(_ context.Context) model.ComponentHealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":    "memory",
			"entries": strconv.Itoa(len(m.items)),
			"hits":    strconv.Itoa(m.hits),
			"misses":  strconv.Itoa(m.misses),
			"ttl":     m.ttl.String(),
		},
	}
}
