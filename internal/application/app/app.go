package app

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-app/docs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/application/schedule"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/home"
	"weather-app/internal/domain/usecase/screen"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/redis"
)

// App holds the wired use cases
type App struct {
	Config         Config
	HomeUseCase    home.UseCase
	WeatherUseCase weather.UseCase
	HealthUseCase  health.UseCase
	Reaper         *screen.Reaper

	redisClient *redis.Client
	scheduler   *schedule.ScreenScheduler
}

// New wires gateways, the screen store and the use cases
func New(ctx context.Context, config Config) (*App, error) {
	application := &App{Config: config}

	screenStore, err := application.newScreenStore(ctx)
	if err != nil {
		return nil, err
	}

	apiGateway := api.NewWeatherGateway(config.BaseURL, config.APIKey, http.ClientOptions{
		ConnectionTimeout: config.ConnectionTimeout,
		ReadTimeout:       config.ReadTimeout,
		Logger:            http.ZapLogger{Client: "openweather"},
	})
	lifetimes := screen.NewLifetimes()

	application.WeatherUseCase = weather.NewWeatherUseCase(apiGateway, screenStore, lifetimes, config.Timezone)
	application.HomeUseCase = home.NewHomeUseCase(apiGateway, screenStore, lifetimes, application.WeatherUseCase)
	application.HealthUseCase = health.NewHealthUseCase(screenStore, config.BaseURL, config.APIKey != "")
	application.Reaper = screen.NewReaper(screenStore, lifetimes, config.StoreTTL)
	return application, nil
}

func (a *App) newScreenStore(ctx context.Context) (store.ScreenStore, error) {
	log.Info(msg.GetMessage("store.selected", a.Config.StoreType))
	if a.Config.StoreType != StoreRedis {
		return store.NewMemoryScreenStore(a.Config.StoreTTL), nil
	}

	client, err := redis.NewClient(a.Config.Redis)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		log.Error(msg.GetMessage("store.redis-unavailable", err))
		return nil, fmt.Errorf("redis screen store: %w", err)
	}
	a.redisClient = client
	return store.NewRedisScreenStore(client, a.Config.StoreTTL), nil
}

// Router builds the echo instance with every route under the context path
func (a *App) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)

	docs.SwaggerInfo.BasePath = a.Config.ContextPath
	api := e.Group(a.Config.ContextPath)

	healthController := controller.NewHealthController(api, a.HealthUseCase)
	homeController := controller.NewHomeController(api, a.HomeUseCase, a.Config.Timezone)
	weatherController := controller.NewWeatherController(api, a.WeatherUseCase, a.Config.Timezone)

	healthController.InitHealthRoutes()
	homeController.InitHomeRoutes()
	weatherController.InitWeatherRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// StartSchedules starts the cron that reaps expired screens
func (a *App) StartSchedules() error {
	scheduler := schedule.NewScreenScheduler(a.Reaper, a.Config.StoreSweepCron)
	if err := scheduler.InitScreenScheduleTasks(); err != nil {
		return fmt.Errorf("invalid app.store.sweep-cron %q: %w", a.Config.StoreSweepCron, err)
	}
	a.scheduler = scheduler
	return nil
}

// Close stops the schedules and releases the Redis connection when one is open
func (a *App) Close() error {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.redisClient != nil {
		return a.redisClient.Close()
	}
	return nil
}
