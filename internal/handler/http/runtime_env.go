package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/docker-lab/internal/logger"
)

// runtimeEnvScript publishes the runtime configuration the way a container
// entrypoint would: as a script assigning window.RUNTIME_ENV. Unset values
// are left out so the browser side applies its own fallback.
func (h *Handler) runtimeEnvScript(w http.ResponseWriter, r *http.Request) {
	values, err := json.Marshal(h.runtime.Values())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding runtime env")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte("window.RUNTIME_ENV = "))
	w.Write(values)
	w.Write([]byte(";\n"))
}
