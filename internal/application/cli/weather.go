package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/infra/platform"
)

var (
	weatherLatitude  float64
	weatherLongitude float64
	weatherCity      string
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current weather and the daily forecast",
	Long:  `Load current weather and one forecast entry per day for a position or a city name.`,
	RunE:  runWeather,
}

func init() {
	weatherCmd.Flags().Float64Var(&weatherLatitude, "lat", 0, "Latitude")
	weatherCmd.Flags().Float64Var(&weatherLongitude, "lon", 0, "Longitude")
	weatherCmd.Flags().StringVar(&weatherCity, "city", "", "City name")
	weatherCmd.MarkFlagsRequiredTogether("lat", "lon")
	weatherCmd.MarkFlagsMutuallyExclusive("lat", "city")
	weatherCmd.MarkFlagsOneRequired("lat", "city")
}

func runWeather(cmd *cobra.Command, args []string) error {
	config, err := bootstrap(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	application, err := newOneShotApp(cmd, config)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := cmd.Context()
	var screen *entity.WeatherScreen
	if weatherCity == "" {
		screen, err = application.WeatherUseCase.Mount(ctx, entity.NewLocation(weatherLatitude, weatherLongitude))
		if err != nil {
			return err
		}
	} else {
		// a city goes through the location screen the way a user would: search, then next
		homeScreen, err := application.HomeUseCase.Mount(ctx, platform.NewFixedLocationService(entity.Coordinates{}, true))
		if err != nil {
			return err
		}
		if homeScreen, err = application.HomeUseCase.Search(ctx, homeScreen.ID, weatherCity); err != nil {
			return err
		}
		if homeScreen.Location == nil {
			return fmt.Errorf("city %q not found", weatherCity)
		}
		if screen, err = application.HomeUseCase.Navigate(ctx, homeScreen.ID); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), RenderWeather(model.NewWeatherView(screen, config.Timezone)))
	return nil
}
