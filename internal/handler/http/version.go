package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.buildInfo.BuildVersion()
	if version == "" {
		version = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
