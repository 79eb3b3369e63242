package cli

import (
	"errors"
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"weather-app/internal/application/app"
	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/home"
	"weather-app/internal/infra/platform"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

var (
	homeLatitude   float64
	homeLongitude  float64
	homeDenied     bool
	homeSearch     string
	homeDirections bool
)

// openURL hands a link to the OS URL handler
var openURL = browser.OpenURL

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the location screen",
	Long:  `Locate the device at the given position, optionally search a city, and print the location table.`,
	RunE:  runHome,
}

func init() {
	homeCmd.Flags().Float64Var(&homeLatitude, "lat", 0, "Device latitude")
	homeCmd.Flags().Float64Var(&homeLongitude, "lon", 0, "Device longitude")
	homeCmd.Flags().BoolVar(&homeDenied, "denied", false, "Refuse the location permission")
	homeCmd.Flags().StringVar(&homeSearch, "search", "", "City to search after locating")
	homeCmd.Flags().BoolVar(&homeDirections, "directions", false, "Open the maps application with directions to the displayed location")
	homeCmd.MarkFlagsRequiredTogether("lat", "lon")
}

func runHome(cmd *cobra.Command, args []string) error {
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
	coords := entity.Coordinates{Latitude: homeLatitude, Longitude: homeLongitude}
	denied := homeDenied || !cmd.Flags().Changed("lat")

	screen, err := application.HomeUseCase.Mount(ctx, platform.NewFixedLocationService(coords, denied))
	if err != nil {
		return err
	}
	if homeSearch != "" {
		if screen, err = application.HomeUseCase.Search(ctx, screen.ID, homeSearch); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), RenderHome(model.NewHomeView(screen)))

	if !homeDirections {
		return nil
	}
	link, err := application.HomeUseCase.Directions(ctx, screen.ID)
	if errors.Is(err, home.ErrLocationUnavailable) {
		fmt.Fprintln(cmd.ErrOrStderr(), msg.GetMessage("cli.no-location"))
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), link)
	if err := openURL(link); err != nil {
		log.Warn(msg.GetMessage("cli.directions-open-failed", err))
	}
	return nil
}

// newOneShotApp wires the application with an in-process store; screens end with the command
func newOneShotApp(cmd *cobra.Command, config app.Config) (*app.App, error) {
	config.StoreType = app.StoreMemory
	return app.New(cmd.Context(), config)
}
