package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/exo-explorer/internal/adapter"
	"github.com/MKhiriev/exo-explorer/internal/config"
	"github.com/MKhiriev/exo-explorer/internal/logger"
	"github.com/MKhiriev/exo-explorer/internal/mock"
	"github.com/MKhiriev/exo-explorer/internal/router"
	"github.com/MKhiriev/exo-explorer/internal/tui"
	"github.com/MKhiriev/exo-explorer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err       error
	startPath string
	calls     int
}

func (f *fakeUI) Run(_ context.Context, startPath string) error {
	f.calls++
	f.startPath = startPath
	return f.err
}

func testConfig(t *testing.T) *config.ClientConfig {
	t.Helper()
	return &config.ClientConfig{
		App: config.ClientApp{
			Language:         models.LanguageEnglish,
			Theme:            string(models.ThemeLight),
			NotFoundRedirect: 5 * time.Second,
		},
		Adapter: config.ClientAdapter{
			HTTPAddress:    "http://localhost:8080/api",
			RequestTimeout: time.Second,
		},
		Storage: config.ClientStorage{
			DB: config.ClientDB{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "client.db")},
		},
	}
}

func withMockAdapter(t *testing.T) *mock.MockServerAdapter {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	m.EXPECT().SetToken(gomock.Any()).AnyTimes()
	m.EXPECT().Token().Return("").AnyTimes()

	original := adapterFactory
	adapterFactory = func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error) {
		return m, nil
	}
	t.Cleanup(func() { adapterFactory = original })
	return m
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "user quit is a clean exit", uiErr: tui.ErrUserQuit},
		{name: "normal exit", uiErr: nil},
		{name: "ui failure is returned", uiErr: errors.New("terminal gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMockAdapter(t)

			app, err := NewApp(context.Background(), testConfig(t), models.NewAppBuildInfo("v1", "today", "abc"), logger.Nop())
			require.NoError(t, err)

			ui := &fakeUI{err: tt.uiErr}
			app.ui = ui

			err = app.Run(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
			assert.Equal(t, router.PathHome, ui.startPath)
		})
	}
}

func TestApp_RunClosesStorage(t *testing.T) {
	withMockAdapter(t)

	app, err := NewApp(context.Background(), testConfig(t), models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	closed := false
	closeStorage := app.closer
	app.closer = func() error {
		closed = true
		return closeStorage()
	}
	app.ui = &fakeUI{}

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, closed)
}

func TestNewApp_AdapterError(t *testing.T) {
	original := adapterFactory
	adapterFactory = func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error) {
		return nil, errors.New("bad address")
	}
	t.Cleanup(func() { adapterFactory = original })

	_, err := NewApp(context.Background(), testConfig(t), models.AppBuildInfo{}, logger.Nop())
	assert.ErrorContains(t, err, "bad address")
}
