package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/docker-lab/internal/display"
	"github.com/MKhiriev/docker-lab/internal/logger"
	"github.com/MKhiriev/docker-lab/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	display   *display.Display
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

// New prepares the terminal front end. Extra program options are appended to
// the defaults (alt screen, mouse support).
func New(d *display.Display, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if d == nil {
		return nil, ErrNoDisplay
	}

	options := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	options = append(options, opts...)

	return &TUI{
		display:   d,
		buildInfo: buildInfo,
		options:   options,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled and returns the final
// counter value.
func (t *TUI) Run(ctx context.Context) (int, error) {
	options := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)

	t.logger.Info().Msg("starting terminal UI")
	finalModel, err := tea.NewProgram(NewLabModel(t.display, t.buildInfo), options...).Run()
	if err != nil {
		return t.display.Count(), fmt.Errorf("run terminal UI: %w", err)
	}

	result, ok := finalModel.(LabModel)
	if !ok {
		return t.display.Count(), tea.ErrProgramKilled
	}

	t.logger.Info().
		Int("count", result.Count()).
		Bool("quit_by_user", result.QuitByUser()).
		Msg("terminal UI stopped")

	return result.Count(), nil
}
