package app

import (
	"fmt"
	"time"

	"weather-app/pkg/redis"
	"weather-app/pkg/resource"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the application configuration read from the properties file
type Config struct {
	Name              string
	Port              string
	ContextPath       string
	Timezone          *time.Location
	BaseURL           string
	APIKey            string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
	StoreType         string
	StoreTTL          time.Duration
	StoreSweepCron    string
	Redis             *redis.Config
}

// LoadConfig reads the app.* properties
func LoadConfig() (Config, error) {
	timezone, err := time.LoadLocation(resource.GetStringOrDefault("app.display.timezone", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid app.display.timezone: %w", err)
	}

	storeType := resource.GetStringOrDefault("app.store.type", StoreMemory)
	if storeType != StoreMemory && storeType != StoreRedis {
		return Config{}, fmt.Errorf("invalid app.store.type %q, expected %s or %s", storeType, StoreMemory, StoreRedis)
	}

	redisConfig := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetIntOrDefault("app.redis.database", 0)).
		WithNamespace(resource.GetStringOrDefault("app.redis.namespace", "weather-app"))

	return Config{
		Name:              resource.GetStringOrDefault("app.name", "weather-app"),
		Port:              resource.GetStringOrDefault("app.server.port", "8080"),
		ContextPath:       resource.GetStringOrDefault("app.server.context-path", "/weather-app"),
		Timezone:          timezone,
		BaseURL:           resource.GetStringOrDefault("app.openweather.base-url", "http://api.openweathermap.org"),
		APIKey:            resource.GetString("app.openweather.api-key"),
		ConnectionTimeout: resource.GetDuration("app.openweather.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.openweather.read-timeout"),
		StoreType:         storeType,
		StoreTTL:          resource.GetDuration("app.store.ttl"),
		StoreSweepCron:    resource.GetStringOrDefault("app.store.sweep-cron", "@every 1m"),
		Redis:             redisConfig,
	}, nil
}
