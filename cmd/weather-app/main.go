package main

import (
	"fmt"
	"os"

	"weather-app/internal/application/cli"
	"weather-app/pkg/log"
)

// @title weather-app
// @version 1.0
// @description Home and weather screens backed by the OpenWeatherMap API.
// @BasePath /weather-app
func main() {
	defer log.Sync()

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
