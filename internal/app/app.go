package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/docker-lab/internal/config"
	"github.com/MKhiriev/docker-lab/internal/display"
	handler "github.com/MKhiriev/docker-lab/internal/handler/http"
	"github.com/MKhiriev/docker-lab/internal/logger"
	"github.com/MKhiriev/docker-lab/internal/server"
	"github.com/MKhiriev/docker-lab/internal/tui"
	"github.com/MKhiriev/docker-lab/models"
)

// FrontEnd runs the page until the user or the environment stops it.
type FrontEnd interface {
	Run(ctx context.Context) error
}

type App struct {
	frontEnd FrontEnd
	display  *display.Display

	logger *logger.Logger
}

// NewApp builds the display component from the runtime and build-time
// sources and prepares the front end cfg asks for.
func NewApp(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	runtimeEnv := models.RuntimeEnv{APIURL: cfg.Runtime.APIURL}
	page := display.New(display.Config{
		RuntimeAPIURL: runtimeEnv.APIURL,
		BuildAPIURL:   buildInfo.APIURL(),
	})

	logger.Debug().
		Bool("runtime_api_url_set", runtimeEnv.APIURL != "").
		Bool("build_api_url_set", buildInfo.APIURL() != "").
		Msg("display component created")

	var (
		frontEnd FrontEnd
		err      error
	)
	if cfg.WebMode() {
		frontEnd, err = newWebFrontEnd(page, runtimeEnv, buildInfo, cfg.Server, logger)
	} else {
		frontEnd, err = newTerminalFrontEnd(page, buildInfo, logger)
	}
	if err != nil {
		return nil, err
	}

	return &App{
		frontEnd: frontEnd,
		display:  page,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.frontEnd.Run(ctx); err != nil {
		return fmt.Errorf("front end stopped: %w", err)
	}

	a.logger.Info().Int("count", a.display.Count()).Msg("application stopped")
	return nil
}

func newWebFrontEnd(page *display.Display, runtimeEnv models.RuntimeEnv, buildInfo models.AppBuildInfo, cfg config.Server, logger *logger.Logger) (FrontEnd, error) {
	h := handler.NewHandler(page, runtimeEnv, buildInfo, logger)

	srv, err := server.NewServer(h.Init(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}
	return srv, nil
}

type terminalFrontEnd struct {
	ui *tui.TUI
}

func newTerminalFrontEnd(page *display.Display, buildInfo models.AppBuildInfo, logger *logger.Logger) (FrontEnd, error) {
	ui, err := tui.New(page, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create terminal UI: %w", err)
	}
	return terminalFrontEnd{ui: ui}, nil
}

func (t terminalFrontEnd) Run(ctx context.Context) error {
	_, err := t.ui.Run(ctx)
	return err
}
