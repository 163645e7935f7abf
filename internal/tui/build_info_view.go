// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/models"
)

const appName = "ExoExplorer"

func renderBuildInfoWindow(e *env, info models.AppBuildInfo) string {
	rows := [][2]string{
		{e.t(i18n.BuildApp), appName},
		{e.t(i18n.BuildVersion), valueOrNA(info.BuildVersion())},
		{e.t(i18n.BuildDate), valueOrNA(info.BuildDate())},
		{e.t(i18n.BuildCommit), valueOrNA(info.BuildCommit())},
	}
	return e.page(strings.ToUpper(e.t(i18n.BuildTitle)), renderRows(rows), e.t(i18n.HelpBack))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
