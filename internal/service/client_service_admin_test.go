package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/exo-explorer/internal/app"
	"github.com/MKhiriev/exo-explorer/models"
)

func TestClientAdminService_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "user@test.io", Email: "user@test.io"})

	_, err := env.services.AdminService.Run(context.Background(), AdminRefresh, false)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClientAdminService_DestructiveNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "admin@test.io", Email: "admin@test.io", IsAdmin: true})

	for _, a := range []AdminAction{AdminClearExoplanets, AdminResetDB, AdminResetAll} {
		assert.True(t, a.Destructive())
		_, err := env.services.AdminService.Run(context.Background(), a, false)
		assert.ErrorIs(t, err, ErrConfirmationNeeded, a)
	}
	assert.False(t, AdminRefresh.Destructive())
}

func TestClientAdminService_Run(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(t, models.User{ID: "admin@test.io", Email: "admin@test.io", IsAdmin: true})
	ctx := context.Background()

	env.adapter.EXPECT().RefreshExoplanets(ctx).Return(app.MsgExoplanetsRefreshed, nil)
	env.adapter.EXPECT().InsertSampleExoplanets(ctx).Return(app.MsgSampleExoplanetsLoaded, nil)
	env.adapter.EXPECT().InsertHabitableExoplanets(ctx).Return("12 exoplanètes habitables insérées avec succès.", nil)
	env.adapter.EXPECT().ClearExoplanets(ctx).Return(app.MsgExoplanetsCleared, nil)
	env.adapter.EXPECT().ResetDB(ctx).Return(nil)
	env.adapter.EXPECT().ResetAll(ctx).Return(responseErr(http.StatusInternalServerError, ""))

	msg, err := env.services.AdminService.Run(ctx, AdminRefresh, false)
	require.NoError(t, err)
	assert.Equal(t, app.MsgExoplanetsRefreshed, msg)

	_, err = env.services.AdminService.Run(ctx, AdminInsert500, false)
	require.NoError(t, err)
	_, err = env.services.AdminService.Run(ctx, AdminInsertHabitable, false)
	require.NoError(t, err)
	_, err = env.services.AdminService.Run(ctx, AdminClearExoplanets, true)
	require.NoError(t, err)

	msg, err = env.services.AdminService.Run(ctx, AdminResetDB, true)
	require.NoError(t, err)
	assert.Empty(t, msg)

	_, err = env.services.AdminService.Run(ctx, AdminResetAll, true)
	assert.ErrorIs(t, err, ErrServerError)

	_, err = env.services.AdminService.Run(ctx, AdminAction("explode"), true)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestClientAdminService_InFlightIsPerAction(t *testing.T) {
	env := newTestEnv(t)
	svc := env.services.AdminService

	require.True(t, svc.TryStart(AdminRefresh))
	assert.False(t, svc.TryStart(AdminRefresh))
	assert.True(t, svc.InFlight(AdminRefresh))

	assert.True(t, svc.TryStart(AdminInsert500), "unrelated actions stay available")

	svc.Finish(AdminRefresh)
	assert.False(t, svc.InFlight(AdminRefresh))
	assert.True(t, svc.TryStart(AdminRefresh))
}
