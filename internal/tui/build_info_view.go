// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-gazelle/models"
)

// RenderBuildInfo draws the version box printed by the version command.
func RenderBuildInfo(libVersion string, info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gazelle"))
	b.WriteString("\n")
	b.WriteString("Library:  ")
	b.WriteString(valueOrNA(libVersion))
	b.WriteString("\n")
	b.WriteString("Version:  ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date:     ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit:   ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return overlayBoxStyle.Render(b.String())
}
