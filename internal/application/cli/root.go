// Package cli holds the weather-app commands: the HTTP server and one-shot screens rendered to the terminal.
package cli

import (
	"errors"
	"io"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weather-app/configs"
	"weather-app/internal/application/app"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
)

var (
	propertiesFile string
	messagesFile   string
	envFile        string
)

var rootCmd = &cobra.Command{
	Use:           "weather-app",
	Short:         "Current weather and daily forecast from OpenWeatherMap",
	Long:          `Locate the device, search cities and show current weather with a daily forecast, over HTTP or in the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&propertiesFile, "config", resource.Path(), "Application properties file")
	rootCmd.PersistentFlags().StringVar(&messagesFile, "messages", msg.Path(), "Log messages file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file loaded before the properties")

	rootCmd.AddCommand(serveCmd, homeCmd, weatherCmd)
}

// Execute runs the command selected by the process arguments
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads the environment, properties and messages, then reads the app config.
// Placeholders in the properties file are resolved against the variables from the env file.
// Logs go to logOut so one-shot commands keep stdout for the rendered screen.
func bootstrap(logOut io.Writer) (app.Config, error) {
	envErr := godotenv.Load(envFile)
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		return app.Config{}, envErr
	}
	configs.Load()
	log.Replace(log.New(configs.Env.LogLevel, configs.Env.ApplicationName, logOut))

	if err := resource.Init(propertiesFile); err != nil {
		return app.Config{}, err
	}
	if err := msg.Init(messagesFile); err != nil {
		return app.Config{}, err
	}

	if envErr != nil {
		log.Debug(msg.GetMessage("app.env-not-loaded", envErr))
	}
	log.Debug(msg.GetMessage("app.config-loaded", propertiesFile))
	return app.LoadConfig()
}
