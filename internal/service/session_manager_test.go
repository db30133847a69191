// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmontesdeoca/passvault/internal/logger"
	"github.com/jmontesdeoca/passvault/internal/mock"
	"github.com/jmontesdeoca/passvault/internal/store"
	"github.com/jmontesdeoca/passvault/models"
)

func newSessionTestDeps(t *testing.T) (*mock.MockServerAdapter, *mock.MockCredentialCache, *mock.MockDeviceCipher, SessionManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockCache := mock.NewMockCredentialCache(ctrl)
	mockDevice := mock.NewMockDeviceCipher(ctrl)

	// a one-hour tick keeps the background driver quiet; tests step the
	// countdown by calling UpdateSessionTime directly
	m := NewSessionManager(mockAdapter, mockCache, mockDevice, time.Hour, logger.Nop())
	return mockAdapter, mockCache, mockDevice, m
}

// ── InitializeSession ───────────────────────────────────────────────────────

func TestInitializeSession_NonPositiveMinutes(t *testing.T) {
	_, _, _, m := newSessionTestDeps(t)

	for _, minutes := range []int{0, -5} {
		err := m.InitializeSession(context.Background(), minutes)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfig)
	}
}

func TestInitializeSession_ArmsCountdown(t *testing.T) {
	_, _, _, m := newSessionTestDeps(t)

	require.NoError(t, m.InitializeSession(context.Background(), 5))

	assert.False(t, m.IsSessionExpired())
	remaining := m.GetRemainingTime()
	assert.Greater(t, remaining, 4*time.Minute)
	assert.LessOrEqual(t, remaining, 5*time.Minute)
}

// ── Expiry countdown ────────────────────────────────────────────────────────

func TestUpdateSessionTime_ExpiryFiresExactlyOnce(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)

	mockCache.EXPECT().ClearSession(gomock.Any()).Return(nil)

	var fired int
	m.OnSessionExpired(func() { fired++ })

	require.NoError(t, m.InitializeSession(context.Background(), 1))

	for tick := 1; tick <= 61; tick++ {
		m.UpdateSessionTime()

		switch {
		case tick < 60:
			assert.False(t, m.IsSessionExpired(), "tick %d", tick)
		default:
			assert.True(t, m.IsSessionExpired(), "tick %d", tick)
		}
	}

	assert.Equal(t, 1, fired, "expiry observer must fire exactly once")
	_, ok := m.CurrentSession()
	assert.False(t, ok, "expiry performs a full logout")
}

func TestUpdateSessionTime_AllObserversFire(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)

	mockCache.EXPECT().ClearSession(gomock.Any()).Return(nil)

	var first, second int
	m.OnSessionExpired(func() { first++ })
	m.OnSessionExpired(func() { second++ })

	require.NoError(t, m.InitializeSession(context.Background(), 1))
	for tick := 0; tick < 60; tick++ {
		m.UpdateSessionTime()
	}

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestUpdateSessionTime_LateTickIsNoOp(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)

	mockCache.EXPECT().ClearSession(gomock.Any()).Return(nil)

	require.NoError(t, m.InitializeSession(context.Background(), 1))
	for tick := 0; tick < 60; tick++ {
		m.UpdateSessionTime()
	}

	assert.NotPanics(t, func() { m.UpdateSessionTime() })
	assert.True(t, m.IsSessionExpired())
}

func TestUpdateSessionTime_WithoutSession_NoOp(t *testing.T) {
	_, _, _, m := newSessionTestDeps(t)

	assert.NotPanics(t, func() { m.UpdateSessionTime() })
	assert.True(t, m.IsSessionExpired(), "no session counts as expired")
}

// Runs the real background driver at a fast tick: the first session expires
// on its own, a login lands right after, and the second session's countdown
// must run undisturbed to its own expiry.
func TestExpiry_ImmediateLogin_FreshCountdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockDevice := mock.NewMockDeviceCipher(ctrl)
	cache := store.NewMemoryCache()
	m := NewSessionManager(mockAdapter, cache, mockDevice, 2*time.Millisecond, logger.Nop())
	ctx := context.Background()

	expiries := make(chan struct{}, 2)
	m.OnSessionExpired(func() { expiries <- struct{}{} })

	require.NoError(t, m.InitializeSession(ctx, 1))

	select {
	case <-expiries:
	case <-time.After(5 * time.Second):
		t.Fatal("first session never expired")
	}
	assert.True(t, m.IsSessionExpired())

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{
		UserID: "user-1", APIToken: "api-token", ExpireMinutes: 1,
	}, nil)

	session, err := m.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.False(t, m.IsSessionExpired(), "fresh session must not inherit the expired state")

	select {
	case <-expiries:
	case <-time.After(5 * time.Second):
		t.Fatal("second session's expiry was never delivered")
	}
	assert.True(t, m.IsSessionExpired())
	_, ok := m.CurrentSession()
	assert.False(t, ok)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success_SessionWindow(t *testing.T) {
	mockAdapter, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{
		UserID:        "user-1",
		Role:          "user",
		SQLToken:      "sql-token",
		APIToken:      "api-token",
		ExpireMinutes: 30,
	}, nil)
	mockCache.EXPECT().SetSession(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().GetFlag(ctx, store.FlagSavePasswordOnNextLogin).Return(false, nil)

	session, err := m.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "a@b.com", session.Email)

	remaining := m.GetRemainingTime()
	assert.LessOrEqual(t, remaining, 30*time.Minute)
	assert.Greater(t, remaining, 30*time.Minute-2*time.Second)

	mockAdapter.EXPECT().Logout()
	mockCache.EXPECT().ClearSession(ctx).Return(nil)
	m.PerformFullLogout(ctx, "test teardown")
}

func TestLogin_Rejected_PriorSessionUntouched(t *testing.T) {
	mockAdapter, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{
		UserID: "user-1", APIToken: "api-token", ExpireMinutes: 30,
	}, nil)
	mockCache.EXPECT().SetSession(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().GetFlag(ctx, store.FlagSavePasswordOnNextLogin).Return(false, nil)

	_, err := m.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "wrong").Return(models.LoginResult{}, assert.AnError)

	_, err = m.Login(ctx, "a@b.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)

	session, ok := m.CurrentSession()
	require.True(t, ok, "prior session survives a rejected login")
	assert.Equal(t, "user-1", session.UserID)

	mockAdapter.EXPECT().Logout()
	mockCache.EXPECT().ClearSession(ctx).Return(nil)
	m.PerformFullLogout(ctx, "test teardown")
}

func TestLogin_NonPositiveServerExpiry(t *testing.T) {
	mockAdapter, _, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{ExpireMinutes: 0}, nil)

	_, err := m.Login(ctx, "a@b.com", "secret1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLogin_ConsumesSavePasswordFlag(t *testing.T) {
	mockAdapter, mockCache, mockDevice, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{
		UserID: "user-1", APIToken: "api-token", ExpireMinutes: 30,
	}, nil)
	mockCache.EXPECT().SetSession(ctx, gomock.Any()).Return(nil)
	gomock.InOrder(
		mockCache.EXPECT().GetFlag(ctx, store.FlagSavePasswordOnNextLogin).Return(true, nil),
		mockDevice.EXPECT().EncryptPassword("secret1").Return("device-blob", nil),
		mockCache.EXPECT().SetSavedPassword(ctx, "device-blob").Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false).Return(nil),
	)

	_, err := m.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)

	mockAdapter.EXPECT().Logout()
	mockCache.EXPECT().ClearSession(ctx).Return(nil)
	m.PerformFullLogout(ctx, "test teardown")
}

func TestLogin_SavePasswordFailure_DoesNotFailLogin(t *testing.T) {
	mockAdapter, mockCache, mockDevice, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{
		UserID: "user-1", APIToken: "api-token", ExpireMinutes: 30,
	}, nil)
	mockCache.EXPECT().SetSession(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().GetFlag(ctx, store.FlagSavePasswordOnNextLogin).Return(true, nil)
	mockDevice.EXPECT().EncryptPassword("secret1").Return("", assert.AnError)

	session, err := m.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err, "saving the password must never fail the login")
	assert.Equal(t, "user-1", session.UserID)

	mockAdapter.EXPECT().Logout()
	mockCache.EXPECT().ClearSession(ctx).Return(nil)
	m.PerformFullLogout(ctx, "test teardown")
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestPerformFullLogout_LocalStateWinsOnStorageFailure(t *testing.T) {
	mockAdapter, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "a@b.com", "secret1").Return(models.LoginResult{
		UserID: "user-1", APIToken: "api-token", ExpireMinutes: 30,
	}, nil)
	mockCache.EXPECT().SetSession(ctx, gomock.Any()).Return(nil)
	mockCache.EXPECT().GetFlag(ctx, store.FlagSavePasswordOnNextLogin).Return(false, nil)

	_, err := m.Login(ctx, "a@b.com", "secret1")
	require.NoError(t, err)

	mockAdapter.EXPECT().Logout()
	mockCache.EXPECT().ClearSession(ctx).Return(store.ErrStorage)

	m.PerformFullLogout(ctx, "user request")

	_, ok := m.CurrentSession()
	assert.False(t, ok, "in-memory session must be cleared despite the storage failure")
}

// ── Save-password / biometric toggles ───────────────────────────────────────

func TestSetSavePasswordOnNextLogin_RequiresBiometrics(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockCache.EXPECT().GetFlag(ctx, store.FlagBiometricsEnabled).Return(false, nil)

	err := m.SetSavePasswordOnNextLogin(ctx, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestSetSavePasswordOnNextLogin_Enable(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		mockCache.EXPECT().GetFlag(ctx, store.FlagBiometricsEnabled).Return(true, nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagSavePasswordOnNextLogin, true).Return(nil),
	)

	require.NoError(t, m.SetSavePasswordOnNextLogin(ctx, true))
}

func TestSetSavePasswordOnNextLogin_OffCascade(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		mockCache.EXPECT().GetSavedPassword(ctx).Return("device-blob", nil),
		mockCache.EXPECT().ClearSavedPassword(ctx).Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false).Return(nil),
	)

	require.NoError(t, m.SetSavePasswordOnNextLogin(ctx, false))
}

func TestSetSavePasswordOnNextLogin_OffCascade_RollsBackOnFailure(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		mockCache.EXPECT().GetSavedPassword(ctx).Return("device-blob", nil),
		mockCache.EXPECT().ClearSavedPassword(ctx).Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false).Return(store.ErrStorage),
		mockCache.EXPECT().SetSavedPassword(ctx, "device-blob").Return(nil),
	)

	err := m.SetSavePasswordOnNextLogin(ctx, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorage)
}

func TestSetBiometricEnabled_DisableCascadesIntoSavePasswordOff(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		mockCache.EXPECT().GetSavedPassword(ctx).Return("device-blob", nil),
		mockCache.EXPECT().ClearSavedPassword(ctx).Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false).Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagBiometricsEnabled, false).Return(nil),
	)

	require.NoError(t, m.SetBiometricEnabled(ctx, false))
}

func TestSetBiometricEnabled_DisableFlagWriteFails_PasswordStaysCleared(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	// the cascade clears the saved password, then the biometrics flag
	// write fails; the password is not restored
	gomock.InOrder(
		mockCache.EXPECT().GetSavedPassword(ctx).Return("device-blob", nil),
		mockCache.EXPECT().ClearSavedPassword(ctx).Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false).Return(nil),
		mockCache.EXPECT().SetFlag(ctx, store.FlagBiometricsEnabled, false).Return(store.ErrStorage),
	)

	err := m.SetBiometricEnabled(ctx, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStorage)
}

func TestSaveCascade_EndToEndWithMemoryCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockDevice := mock.NewMockDeviceCipher(ctrl)
	cache := store.NewMemoryCache()
	m := NewSessionManager(mockAdapter, cache, mockDevice, time.Hour, logger.Nop())
	ctx := context.Background()

	require.NoError(t, m.SetBiometricEnabled(ctx, true))
	require.NoError(t, m.SetSavePasswordOnNextLogin(ctx, true))
	require.NoError(t, cache.SetSavedPassword(ctx, "device-blob"))

	require.NoError(t, m.SetBiometricEnabled(ctx, false))

	enabled, err := m.GetSavePasswordOnNextLogin(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, m.HasSavedPassword(ctx))

	bio, err := m.IsBiometricEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, bio)
}

// ── Saved password access ───────────────────────────────────────────────────

func TestGetSavedPassword_Decrypts(t *testing.T) {
	_, mockCache, mockDevice, m := newSessionTestDeps(t)
	ctx := context.Background()

	gomock.InOrder(
		mockCache.EXPECT().GetSavedPassword(ctx).Return("device-blob", nil),
		mockDevice.EXPECT().DecryptPassword("device-blob").Return("secret1", nil),
	)

	pw, err := m.GetSavedPassword(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret1", pw)
}

func TestHasSavedPassword(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockCache.EXPECT().GetSavedPassword(ctx).Return("", store.ErrFieldNotFound)
	assert.False(t, m.HasSavedPassword(ctx))

	mockCache.EXPECT().GetSavedPassword(ctx).Return("device-blob", nil)
	assert.True(t, m.HasSavedPassword(ctx))
}

// ── RestoreSession ──────────────────────────────────────────────────────────

func TestRestoreSession_AdoptsValidPersistedSession(t *testing.T) {
	mockAdapter, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	persisted := models.Session{
		UserID:    "user-1",
		Email:     "a@b.com",
		APIToken:  "api-token",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}
	mockCache.EXPECT().GetSession(ctx).Return(persisted, nil)
	mockAdapter.EXPECT().SetToken("api-token")

	session, err := m.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.False(t, m.IsSessionExpired())

	mockAdapter.EXPECT().Logout()
	mockCache.EXPECT().ClearSession(ctx).Return(nil)
	m.PerformFullLogout(ctx, "test teardown")
}

func TestRestoreSession_ExpiredPersistedSession(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockCache.EXPECT().GetSession(ctx).Return(models.Session{
		UserID:    "user-1",
		APIToken:  "api-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err := m.RestoreSession(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	_, ok := m.CurrentSession()
	assert.False(t, ok)
}

func TestRestoreSession_NothingPersisted(t *testing.T) {
	_, mockCache, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockCache.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrFieldNotFound)

	_, err := m.RestoreSession(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_MapsAdapterErrors(t *testing.T) {
	mockAdapter, _, _, m := newSessionTestDeps(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, "a@b.com", "pw", "pw").Return(assert.AnError)

	err := m.Register(ctx, "a@b.com", "pw", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
}
