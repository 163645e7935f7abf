package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/store"
	"github.com/MKhiriev/exo-explorer/models"
)

// Local storage keys.
const (
	StorageKeyUser     = "user"
	StorageKeyToken    = "token"
	StorageKeyLanguage = "language"
	StorageKeyTheme    = "theme"
)

// preference is a string-like value kept in memory and mirrored to local
// storage under key. Reads are served from memory, and the memory value only
// changes once storage accepted it.
type preference[T ~string] struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	value   T
	key     string
	valid   func(T) bool
	storage store.LocalStorage
	logger  *logger.Logger
}

func (p *preference[T]) get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

func (p *preference[T]) set(ctx context.Context, v T) error {
	if !p.valid(v) {
		return fmt.Errorf("%w: %s=%q", ErrUnsupportedPreference, p.key, v)
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	if err := p.storage.Set(ctx, p.key, string(v)); err != nil {
		p.logger.Err(err).Str("func", "preference.set").Str("key", p.key).Msg("error persisting preference")
		return fmt.Errorf("persist %s: %w", p.key, err)
	}

	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
	return nil
}

// load replaces the in-memory value with the stored one. A missing or
// unusable entry keeps the current value.
func (p *preference[T]) load(ctx context.Context) error {
	raw, err := p.storage.Get(ctx, p.key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", p.key, err)
	}

	v := T(raw)
	if !p.valid(v) {
		p.logger.Warn().Str("func", "preference.load").Str("key", p.key).Str("value", raw).Msg("ignoring stored preference")
		return nil
	}

	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
	return nil
}

// ThemeHolder is the global light/dark switch.
type ThemeHolder struct {
	pref preference[models.Theme]
}

func NewThemeHolder(initial models.Theme, storage store.LocalStorage, logger *logger.Logger) *ThemeHolder {
	if initial != models.ThemeDark {
		initial = models.ThemeLight
	}
	return &ThemeHolder{pref: preference[models.Theme]{
		value:   initial,
		key:     StorageKeyTheme,
		valid:   func(t models.Theme) bool { return t == models.ThemeLight || t == models.ThemeDark },
		storage: storage,
		logger:  logger,
	}}
}

func (h *ThemeHolder) Theme() models.Theme { return h.pref.get() }

func (h *ThemeHolder) Set(ctx context.Context, theme models.Theme) error {
	return h.pref.set(ctx, theme)
}

// Toggle flips the theme and returns the new one.
func (h *ThemeHolder) Toggle(ctx context.Context) (models.Theme, error) {
	next := h.Theme().Toggle()
	return next, h.pref.set(ctx, next)
}

func (h *ThemeHolder) Load(ctx context.Context) error { return h.pref.load(ctx) }

// LocaleHolder is the global UI language.
type LocaleHolder struct {
	pref preference[string]
}

func NewLocaleHolder(initial string, storage store.LocalStorage, logger *logger.Logger) *LocaleHolder {
	if !models.IsSupportedLanguage(initial) {
		initial = models.LanguageEnglish
	}
	return &LocaleHolder{pref: preference[string]{
		value:   initial,
		key:     StorageKeyLanguage,
		valid:   models.IsSupportedLanguage,
		storage: storage,
		logger:  logger,
	}}
}

func (h *LocaleHolder) Language() string { return h.pref.get() }

func (h *LocaleHolder) Set(ctx context.Context, lang string) error {
	return h.pref.set(ctx, lang)
}

func (h *LocaleHolder) Load(ctx context.Context) error { return h.pref.load(ctx) }

// applyPreferences pushes a profile's stored preferences into the holders.
// Both are attempted; the first failure is returned.
func applyPreferences(ctx context.Context, theme *ThemeHolder, locale *LocaleHolder, prefs models.Preferences) error {
	errTheme := theme.Set(ctx, models.ThemeFromDarkMode(prefs.DarkMode))

	var errLang error
	if prefs.Language != "" {
		errLang = locale.Set(ctx, prefs.Language)
	}

	return errors.Join(errTheme, errLang)
}
