package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-weather/configs"
	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/catalog"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title go-weather API
// @version 1.0
// @description Current weather of a fixed set of world cities, aggregated from OpenWeatherMap.
// @BasePath /api
func main() {
	log.Info(msg.GetMessage("app.start"), zap.String("application", configs.Env.ApplicationName))
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	contextPath := resource.GetString("app.server.context-path")
	if contextPath == "" {
		contextPath = configs.Env.ContextPath
	}
	group := e.Group(contextPath)

	cityCatalog, err := catalog.Load()
	if err != nil {
		log.Fatal("failed to load city catalog", zap.Error(err))
	}

	// Init cache
	var redisClient *redis.Client
	var weatherCache cache.WeatherCacheGateway
	cacheName := resource.GetString("weather.cache.name")
	cacheTTL := resource.GetDuration("weather.cache.ttl")
	if resource.GetBool("redis.enabled") {
		redisClient = redis.NewClient(redis.NewRedisConfig().
			WithHost(resource.GetString("redis.host")).
			WithPort(resource.GetInt("redis.port")).
			WithPassword(resource.GetString("redis.password")).
			WithDatabase(resource.GetInt("redis.db")).
			WithMaxActive(resource.GetInt("redis.pool-size")).
			WithCacheTTL(cacheName, cacheTTL))
		defer redisClient.Close()

		if err := redisClient.Ping(ctx); err != nil {
			log.Warn("redis is not reachable yet, cache reads will miss", zap.Error(err))
		}
		weatherCache = cache.NewRedisWeatherCacheGateway(redisClient, cacheName)
	} else {
		log.Info(msg.GetMessage("health.cache.disabled"))
		weatherCache = cache.NewMemoryWeatherCacheGateway(cacheTTL)
	}

	// Init WeatherGateway: cache in front of the rate limiter in front of HTTP
	providerURL := resource.GetString("weather.provider.base-url")
	apiKey := resource.GetString("weather.provider.api-key")
	providerTimeout := resource.GetDuration("weather.provider.timeout")
	owmGateway := api.NewWeatherGateway(providerURL, apiKey,
		resource.GetString("weather.provider.units"), resource.GetString("weather.provider.mode"), httpclient.ClientOptions{
		ConnectionTimeout: providerTimeout,
		ReadTimeout:       providerTimeout,
		Logger:            httpclient.ZapLogger{},
	})
	weatherGateway := api.NewCachedWeatherGateway(
		api.NewRateLimitedWeatherGateway(owmGateway,
			resource.GetFloat64("weather.provider.rate-limit.requests-per-second"),
			resource.GetInt("weather.provider.rate-limit.burst")),
		weatherCache,
	)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(cityCatalog, weatherGateway)
	healthUseCase := health.NewHealthUseCase(weatherCache, cityCatalog, providerURL, apiKey != "")

	// Init Controller
	weatherController := controller.NewWeatherController(group, weatherUseCase)
	iconController := controller.NewIconController(group, resource.GetString("app.icon.path"))
	healthController := controller.NewHealthController(group, healthUseCase)

	// Init Routes
	weatherController.InitWeatherRoutes()
	iconController.InitIconRoutes()
	healthController.InitHealthRoutes()

	// Init Schedule
	weatherScheduler := schedule.NewWeatherScheduler(weatherUseCase, redisClient,
		resource.GetString("weather.warmup.cron"), resource.GetDuration("weather.warmup.lock-ttl"))
	if err := weatherScheduler.InitWeatherScheduleTasks(ctx); err != nil {
		log.Fatal("failed to schedule weather cache warm-up", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.shutdown"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	weatherScheduler.Stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
