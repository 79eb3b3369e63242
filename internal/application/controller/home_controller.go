package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/home"
	"weather-app/internal/infra/platform"
)

type HomeController struct {
	api      *echo.Group
	useCase  home.UseCase
	timezone *time.Location
}

func NewHomeController(api *echo.Group, useCase home.UseCase, timezone *time.Location) *HomeController {
	return &HomeController{api: api, useCase: useCase, timezone: timezone}
}

// InitHomeRoutes initializes home screen routes
func (controller *HomeController) InitHomeRoutes() {
	controller.api.POST("/home", controller.Mount)
	controller.api.GET("/home/:id", controller.Get)
	controller.api.POST("/home/:id/search", controller.Search)
	controller.api.GET("/home/:id/directions", controller.Directions)
	controller.api.POST("/home/:id/next", controller.Next)
	controller.api.DELETE("/home/:id", controller.Unmount)
}

// Mount godoc
// @Summary Mount a home screen
// @Description Open a home screen with the position reported by the device and resolve its city and country
// @Tags home
// @Accept json
// @Produce json
// @Param device body model.MountHomeDTO true "Device position or denied permission"
// @Success 201 {object} model.HomeView "Mounted screen"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /home [post]
func (controller *HomeController) Mount(c echo.Context) error {
	var dto model.MountHomeDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	locator := platform.NewFixedLocationService(dto.Coordinates(), dto.PermissionDenied)
	screen, err := controller.useCase.Mount(c.Request().Context(), locator)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.NewHomeView(screen))
}

// Get godoc
// @Summary Get a home screen
// @Tags home
// @Produce json
// @Param id path string true "Screen id"
// @Success 200 {object} model.HomeView "Current display state"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /home/{id} [get]
func (controller *HomeController) Get(c echo.Context) error {
	screen, err := controller.useCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewHomeView(screen))
}

// Search godoc
// @Summary Search a city
// @Description Replace the displayed location with the searched city. Unknown cities leave the screen unchanged.
// @Tags home
// @Accept json
// @Produce json
// @Param id path string true "Screen id"
// @Param search body model.SearchDTO true "City name"
// @Success 200 {object} model.HomeView "Display state after the search"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /home/{id}/search [post]
func (controller *HomeController) Search(c echo.Context) error {
	var dto model.SearchDTO
	if err := c.Bind(&dto); err != nil {
		return badRequest(c, "Invalid request body")
	}

	screen, err := controller.useCase.Search(c.Request().Context(), c.Param("id"), dto.City)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, model.NewHomeView(screen))
}

// Directions godoc
// @Summary Get directions
// @Description Redirect to the maps application with the displayed coordinates as destination
// @Tags home
// @Param id path string true "Screen id"
// @Success 302 "Redirect to the maps application"
// @Failure 404 {object} map[string]string "Screen not found"
// @Failure 409 {object} map[string]string "No location yet"
// @Router /home/{id}/directions [get]
func (controller *HomeController) Directions(c echo.Context) error {
	link, err := controller.useCase.Directions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Redirect(http.StatusFound, link)
}

// Next godoc
// @Summary Go to the weather screen
// @Description Mount a weather screen with the home screen's location
// @Tags home
// @Produce json
// @Param id path string true "Screen id"
// @Success 201 {object} model.WeatherView "Mounted weather screen"
// @Failure 404 {object} map[string]string "Screen not found"
// @Failure 409 {object} map[string]string "No location yet"
// @Router /home/{id}/next [post]
func (controller *HomeController) Next(c echo.Context) error {
	screen, err := controller.useCase.Navigate(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.NewWeatherView(screen, controller.timezone))
}

// Unmount godoc
// @Summary Unmount a home screen
// @Tags home
// @Param id path string true "Screen id"
// @Success 204 "Screen discarded"
// @Failure 404 {object} map[string]string "Screen not found"
// @Router /home/{id} [delete]
func (controller *HomeController) Unmount(c echo.Context) error {
	if err := controller.useCase.Unmount(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
