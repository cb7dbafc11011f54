package http

import (
	"sync"

	"github.com/MKhiriev/docker-lab/internal/display"
	"github.com/MKhiriev/docker-lab/internal/logger"
	"github.com/MKhiriev/docker-lab/models"
)

// Handler serves one lab page. All requests share its display component;
// mu serializes clicks and renders because net/http runs handlers
// concurrently.
type Handler struct {
	mu        sync.Mutex
	display   *display.Display
	runtime   models.RuntimeEnv
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(d *display.Display, runtime models.RuntimeEnv, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		display:   d,
		runtime:   runtime,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (h *Handler) render() display.View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.display.Render()
}

func (h *Handler) click() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.display.Click()
	return h.display.Count()
}
