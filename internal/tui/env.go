package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/i18n"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/service"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/atotto/clipboard"
)

// DefaultNotFoundRedirect is the not-found countdown used when Options
// leaves it unset.
const DefaultNotFoundRedirect = 10 * time.Second

// Options tune the terminal UI.
type Options struct {
	// NotFoundRedirect is how long the not-found view waits before going
	// home.
	NotFoundRedirect time.Duration
	// BuildInfo is shown in the about window.
	BuildInfo models.AppBuildInfo
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(text string) error
}

func (o Options) withDefaults() Options {
	if o.NotFoundRedirect <= 0 {
		o.NotFoundRedirect = DefaultNotFoundRedirect
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.WriteAll
	}
	return o
}

// env is what every page shares: the services, the options and the context
// commands run with.
type env struct {
	ctx      context.Context
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func (e *env) lang() string {
	return e.services.Locale.Language()
}

func (e *env) t(key string, params ...string) string {
	return e.services.Bundle.T(e.lang(), key, params...)
}

func (e *env) palette() palette {
	return paletteFor(e.services.Theme.Theme())
}

func (e *env) page(title, data, hotKeys string) string {
	return renderPage(e.palette().title.Render(title), data, hotKeys, "ctrl+c: "+e.t(i18n.CommonQuit))
}

// measure renders an optional value with its unit, or "unknown".
func (e *env) measure(v *float64, decimals uint64, unitKey string) string {
	if v == nil {
		return e.t(i18n.ExoUnknown)
	}
	out := e.services.Bundle.Number(e.lang(), *v, decimals)
	if unitKey != "" {
		out += " " + e.t(unitKey)
	}
	return out
}

func (e *env) year(v *int) string {
	if v == nil {
		return e.t(i18n.ExoUnknown)
	}
	return strconv.Itoa(*v)
}
