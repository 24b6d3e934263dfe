package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("GO_WEATHER_TEST_PORT", "9090")

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"env present", "${GO_WEATHER_TEST_PORT:8080}", "9090"},
		{"env missing uses default", "${GO_WEATHER_TEST_MISSING:8080}", "8080"},
		{"env missing without default", "${GO_WEATHER_TEST_MISSING}", ""},
		{"embedded in text", "http://localhost:${GO_WEATHER_TEST_PORT:1}/api", "http://localhost:9090/api"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveEnvVariable(tt.value); got != tt.want {
				t.Errorf("resolveEnvVariable(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestInitFallsBackToEmbeddedProperties(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "missing.yml"))

	if got := GetDuration("weather.cache.ttl"); got != 300*time.Second {
		t.Errorf("weather.cache.ttl = %v, want %v", got, 300*time.Second)
	}
	if got := GetString("weather.provider.units"); got != "metric" {
		t.Errorf("weather.provider.units = %q, want %q", got, "metric")
	}
}

func TestInitReadsFileAndResolvesPlaceholders(t *testing.T) {
	t.Setenv("GO_WEATHER_TEST_HOST", "cache.internal")
	path := filepath.Join(t.TempDir(), "application.yml")
	content := "redis:\n  host: ${GO_WEATHER_TEST_HOST:localhost}\n  port: ${GO_WEATHER_TEST_NOPE:6380}\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}
	t.Cleanup(func() { Init(filepath.Join(t.TempDir(), "missing.yml")) })

	Init(path)

	if got := GetString("redis.host"); got != "cache.internal" {
		t.Errorf("redis.host = %q, want %q", got, "cache.internal")
	}
	if got := GetInt("redis.port"); got != 6380 {
		t.Errorf("redis.port = %d, want %d", got, 6380)
	}
}

func TestUnmarshalKeyCities(t *testing.T) {
	Init(filepath.Join(t.TempDir(), "missing.yml"))

	var cities []struct {
		Name         string  `mapstructure:"name"`
		Abbreviation string  `mapstructure:"abbreviation"`
		Lat          float64 `mapstructure:"lat"`
	}
	if err := UnmarshalKey("weather.cities", &cities); err != nil {
		t.Fatalf("UnmarshalKey() error = %v", err)
	}
	if len(cities) != 12 {
		t.Fatalf("len(cities) = %d, want 12", len(cities))
	}
	if cities[0].Name != "New York" || cities[0].Abbreviation != "NYC" {
		t.Errorf("cities[0] = %+v, want New York/NYC", cities[0])
	}
}
