// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/docker-lab/internal/display"
	"github.com/MKhiriev/docker-lab/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: docker-lab\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
	b.WriteString("VITE_API_URL: ")
	b.WriteString(display.Resolve(info.APIURL()))

	return renderPage("BUILD INFO", overlayStyle.Render(b.String()), "esc: back")
}
