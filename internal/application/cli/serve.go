package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"weather-app/internal/application/app"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Serve the home and weather screens over HTTP under the configured context path.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	config, err := bootstrap(os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, config)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Errorf("failed to close application: %v", err)
		}
	}()

	if err := application.StartSchedules(); err != nil {
		return err
	}

	e := application.Router()
	serverErr := make(chan error, 1)
	go func() {
		log.Info(msg.GetMessage("app.start", config.Name, config.Port, config.ContextPath))
		serverErr <- e.Start(":" + config.Port)
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(msg.GetMessage("app.shutdown", config.Name))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
