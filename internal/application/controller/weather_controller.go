package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/weather"
)

type WeatherController struct {
	api      *echo.Group
	useCase  weather.UseCase
	timezone *time.Location
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase, timezone *time.Location) *WeatherController {
	return &WeatherController{api: api, useCase: useCase, timezone: timezone}
}

// InitWeatherRoutes initializes weather screen routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/weather", controller.Mount)
	controller.api.GET("/weather/:id", controller.Get)
	controller.api.POST("/weather/:id/search", controller.Search)
	controller.api.PUT("/weather/:id/location", controller.ChangeLocation)
	controller.api.DELETE("/weather/:id", controller.Unmount)
}

// Mount godoc
// @Summary Mount a weather screen
// @Description Open a weather screen for a location and load current weather and the daily forecast
// @Tags weather
// @Accept json
// @Produce json
// @Param location body model.CoordinatesDTO true "Location"
// @Success 201 {object} model.WeatherView "Mounted screen"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /weather [post]
func (controller *WeatherController) Mount(c echo.Context) error {
	var dto model.CoordinatesDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	screen, err := controller.useCase.Mount(c.Request().Context(), dto.Location())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.NewWeatherView(screen, controller.timezone))
}

// Get godoc
// @Summary Get a weather screen
// @Tags weather
// @Produce json
// @Param id path string true "Screen id"
// @Success 200 {object} model.WeatherView "Current display state"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /weather/{id} [get]
func (controller *WeatherController) Get(c echo.Context) error {
	screen, err := controller.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewWeatherView(screen, controller.timezone))
}

// Search godoc
// @Summary Search a city
// @Description Reload current weather by city name and the forecast for its coordinates. Unknown cities leave the screen unchanged.
// @Tags weather
// @Accept json
// @Produce json
// @Param id path string true "Screen id"
// @Param search body model.SearchDTO true "City name"
// @Success 200 {object} model.WeatherView "Display state after the search"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /weather/{id}/search [post]
func (controller *WeatherController) Search(c echo.Context) error {
	var dto model.SearchDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	screen, err := controller.useCase.Search(c.Request().Context(), c.Param("id"), dto.City)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewWeatherView(screen, controller.timezone))
}

// ChangeLocation godoc
// @Summary Change the location
// @Description Point the screen at a new location and reload both current weather and forecast
// @Tags weather
// @Accept json
// @Produce json
// @Param id path string true "Screen id"
// @Param location body model.CoordinatesDTO true "Location"
// @Success 200 {object} model.WeatherView "Display state after the reload"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /weather/{id}/location [put]
func (controller *WeatherController) ChangeLocation(c echo.Context) error {
	var dto model.CoordinatesDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	screen, err := controller.useCase.ChangeLocation(c.Request().Context(), c.Param("id"), dto.Location())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewWeatherView(screen, controller.timezone))
}

// Unmount godoc
// @Summary Unmount a weather screen
// @Tags weather
// @Param id path string true "Screen id"
// @Success 204 "Screen discarded"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /weather/{id} [delete]
func (controller *WeatherController) Unmount(c echo.Context) error {
	if err := controller.useCase.Unmount(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
