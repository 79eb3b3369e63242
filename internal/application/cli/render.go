package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weather-app/internal/domain/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(0, 1)

	dayStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1).
			Align(lipgloss.Center)
)

// RenderHome draws the location table and the map pin of a home screen
func RenderHome(view model.HomeView) string {
	rows := []string{
		titleStyle.Render("Location"),
		row("City", view.Table.City),
		row("Country", view.Table.Country),
		row("Latitude", view.Table.Latitude),
		row("Longitude", view.Table.Longitude),
	}
	if view.Map != nil {
		rows = append(rows, dimStyle.Render("Map centered on "+view.Table.Latitude+", "+view.Table.Longitude))
	}
	rows = append(rows, dimStyle.Render("Status "+view.Status))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// RenderWeather draws the current conditions followed by one box per forecast day
func RenderWeather(view model.WeatherView) string {
	sections := []string{titleStyle.Render("Weather")}
	if current := view.Current; current != nil {
		sections = append(sections,
			row("Location", strings.TrimSuffix(current.City+", "+current.Country, ", ")),
			row("Temperature", current.Temperature),
			row("Feels like", current.FeelsLike),
			row("Wind", current.WindSpeed),
			row("Humidity", current.Humidity),
			row("Sunrise", current.Sunrise),
			row("Sunset", current.Sunset),
			row("Conditions", current.Description),
		)
	} else {
		sections = append(sections, dimStyle.Render("No current weather"))
	}

	if len(view.Forecast) > 0 {
		days := make([]string, 0, len(view.Forecast))
		for _, item := range view.Forecast {
			days = append(days, dayStyle.Render(item.Date+"\n"+item.Temperature))
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, days...))
	}
	sections = append(sections, dimStyle.Render("Status "+view.Status))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func row(label, value string) string {
	if value == "" {
		value = "-"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
