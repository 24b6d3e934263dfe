package cache

import (
	"context"
	"testing"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"
)

func TestMemoryWeatherCacheGatewayExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	gateway := newMemoryWeatherCacheGateway(300*time.Second, func() time.Time { return now })
	ctx := context.Background()
	key := Key(51.5074, -0.1278)

	if _, ok := gateway.Get(ctx, key); ok {
		t.Fatal("Get() on empty cache reported a hit")
	}

	gateway.Set(ctx, key, &external.CurrentWeatherResponse{
		Main:    external.MainDTO{Temp: 12.4},
		Weather: []external.WeatherDescriptionDTO{{Main: "Clouds"}},
	})

	now = now.Add(299 * time.Second)
	got, ok := gateway.Get(ctx, key)
	if !ok {
		t.Fatal("Get() before expiry reported a miss")
	}
	if got.Main.Temp != 12.4 || got.Weather[0].Main != "Clouds" {
		t.Errorf("Get() = %+v", got)
	}

	got.Weather[0].Main = "Rain"
	again, _ := gateway.Get(ctx, key)
	if again.Weather[0].Main != "Clouds" {
		t.Error("cached entry was mutated through a returned value")
	}

	now = now.Add(time.Second)
	if _, ok := gateway.Get(ctx, key); ok {
		t.Error("Get() at ttl reported a hit")
	}

	health := gateway.Health(ctx)
	if health.Status != model.StatusUp {
		t.Errorf("Health().Status = %s, want UP", health.Status)
	}
	if health.Details["hits"] != "2" || health.Details["misses"] != "2" {
		t.Errorf("hits/misses = %s/%s, want 2/2", health.Details["hits"], health.Details["misses"])
	}
}

func TestKey(t *testing.T) {
	if got := Key(-33.8688, 151.2093); got != "-33.8688,151.2093" {
		t.Errorf("Key() = %q", got)
	}
}
