// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmontesdeoca/passvault/internal/adapter"
	"github.com/jmontesdeoca/passvault/internal/crypto"
	"github.com/jmontesdeoca/passvault/internal/logger"
	"github.com/jmontesdeoca/passvault/internal/store"
	"github.com/jmontesdeoca/passvault/internal/workers"
	"github.com/jmontesdeoca/passvault/models"
)

type sessionManager struct {
	adapter adapter.ServerAdapter
	cache   store.CredentialCache
	device  crypto.DeviceCipher
	log     *logger.Logger
	tick    time.Duration
	now     func() time.Time

	countdown workers.TickerJob

	mu        sync.Mutex
	session   *models.Session
	remaining int // whole seconds left on the countdown
	expired   bool
	fired     bool
	observers []func()
}

// NewSessionManager creates the session lifecycle manager. tick is the
// countdown interval; zero or negative defaults to one second.
func NewSessionManager(serverAdapter adapter.ServerAdapter, cache store.CredentialCache, device crypto.DeviceCipher, tick time.Duration, log *logger.Logger) SessionManager {
	m := &sessionManager{
		adapter: serverAdapter,
		cache:   cache,
		device:  device,
		log:     log,
		tick:    tick,
		now:     time.Now,
	}
	m.countdown = workers.NewTickerJob(func(_ context.Context) bool { return m.advanceCountdown() })
	return m
}

func (m *sessionManager) Register(ctx context.Context, email, password, confirmPassword string) error {
	if err := m.adapter.Register(ctx, email, password, confirmPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	m.log.Info().Str("email", email).Msg("account registered")
	return nil
}

func (m *sessionManager) Login(ctx context.Context, email, password string) (models.Session, error) {
	result, err := m.adapter.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}
	if result.ExpireMinutes <= 0 {
		return models.Session{}, fmt.Errorf("%w: server reported session length %d minutes", ErrConfig, result.ExpireMinutes)
	}

	session := models.Session{
		UserID:    result.UserID,
		Email:     email,
		Role:      result.Role,
		SQLToken:  result.SQLToken,
		APIToken:  result.APIToken,
		ExpiresAt: m.now().Add(time.Duration(result.ExpireMinutes) * time.Minute),
	}

	m.mu.Lock()
	m.session = &session
	m.remaining = result.ExpireMinutes * 60
	m.expired = false
	m.fired = false
	m.mu.Unlock()

	if err = m.cache.SetSession(ctx, session); err != nil {
		m.log.Error().Err(err).Msg("persist session to credential cache")
	}

	m.consumeSavePasswordFlag(ctx, password)

	// the countdown outlives the login call's context
	m.countdown.Start(context.Background(), m.tick)

	m.log.Info().Str("user_id", session.UserID).Int("expire_minutes", result.ExpireMinutes).Msg("session started")
	return session, nil
}

// consumeSavePasswordFlag honors a save-password opt-in recorded before
// this login. None of its failures may fail the login itself.
func (m *sessionManager) consumeSavePasswordFlag(ctx context.Context, password string) {
	flag, err := m.cache.GetFlag(ctx, store.FlagSavePasswordOnNextLogin)
	if err != nil {
		m.log.Warn().Err(err).Msg("read save-password flag")
		return
	}
	if !flag {
		return
	}

	blob, err := m.device.EncryptPassword(password)
	if err != nil {
		m.log.Error().Err(err).Msg("encrypt password for saving")
		return
	}
	if err = m.cache.SetSavedPassword(ctx, blob); err != nil {
		m.log.Error().Err(err).Msg("store saved password")
		return
	}
	if err = m.cache.SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false); err != nil {
		m.log.Warn().Err(err).Msg("clear save-password flag")
	}
}

func (m *sessionManager) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := m.cache.GetSession(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrAuth, err)
	}

	now := m.now()
	if !session.IsAuthenticated(now) {
		return models.Session{}, fmt.Errorf("%w: persisted session has expired", ErrAuth)
	}

	m.adapter.SetToken(session.APIToken)

	m.mu.Lock()
	m.session = &session
	m.remaining = int(session.Remaining(now) / time.Second)
	m.expired = false
	m.fired = false
	m.mu.Unlock()

	m.countdown.Start(context.Background(), m.tick)

	m.log.Info().Str("user_id", session.UserID).Msg("session restored")
	return session, nil
}

func (m *sessionManager) InitializeSession(ctx context.Context, expireMinutes int) error {
	if expireMinutes <= 0 {
		return fmt.Errorf("%w: expire minutes must be positive, got %d", ErrConfig, expireMinutes)
	}

	m.mu.Lock()
	if m.session == nil {
		m.session = &models.Session{}
	}
	m.session.ExpiresAt = m.now().Add(time.Duration(expireMinutes) * time.Minute)
	m.remaining = expireMinutes * 60
	m.expired = false
	m.fired = false
	m.mu.Unlock()

	m.countdown.Start(ctx, m.tick)
	return nil
}

func (m *sessionManager) CurrentSession() (models.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return models.Session{}, false
	}
	return *m.session, true
}

func (m *sessionManager) IsSessionExpired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expired || m.session == nil {
		return true
	}
	return !m.now().Before(m.session.ExpiresAt)
}

func (m *sessionManager) GetRemainingTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expired || m.session == nil {
		return 0
	}
	return m.session.Remaining(m.now())
}

func (m *sessionManager) UpdateSessionTime() {
	m.advanceCountdown()
}

// advanceCountdown consumes one tick and reports whether the countdown
// run should keep going. Returning false on expiry ends the driver's own
// run from inside the tick, so no stop call races a later Start: a fresh
// session's countdown is always a fresh run.
func (m *sessionManager) advanceCountdown() bool {
	m.mu.Lock()
	if m.fired || m.expired || m.session == nil {
		// late tick after stop or logout
		m.mu.Unlock()
		return false
	}

	m.remaining--
	if m.remaining > 0 {
		m.mu.Unlock()
		return true
	}

	m.expired = true
	m.fired = true
	m.session = nil
	m.remaining = 0
	observers := append([]func(){}, m.observers...)
	m.mu.Unlock()

	if err := m.cache.ClearSession(context.Background()); err != nil {
		m.log.Error().Err(err).Msg("clear persisted session after expiry")
	}
	m.log.Info().Msg("session expired")

	// observers fire last: a login they trigger finds the slot already
	// cleared, never a slot this run is still about to clear
	for _, fn := range observers {
		fn()
	}
	return false
}

func (m *sessionManager) OnSessionExpired(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *sessionManager) PerformFullLogout(ctx context.Context, reason string) {
	m.countdown.Stop()
	m.adapter.Logout()
	m.clearSession(ctx, reason)
}

// clearSession drops the in-memory session first and only then touches
// the credential cache: a storage failure never blocks local clearing.
func (m *sessionManager) clearSession(ctx context.Context, reason string) {
	m.mu.Lock()
	m.session = nil
	m.remaining = 0
	m.mu.Unlock()

	if err := m.cache.ClearSession(ctx); err != nil {
		m.log.Error().Err(err).Str("reason", reason).Msg("clear persisted session")
	}

	m.log.Info().Str("reason", reason).Msg("session cleared")
}

func (m *sessionManager) SetSavePasswordOnNextLogin(ctx context.Context, flag bool) error {
	if flag {
		enabled, err := m.cache.GetFlag(ctx, store.FlagBiometricsEnabled)
		if err != nil {
			return err
		}
		if !enabled {
			return fmt.Errorf("%w: saving the password requires biometrics", ErrConfig)
		}
		return m.cache.SetFlag(ctx, store.FlagSavePasswordOnNextLogin, true)
	}

	// off-cascade: ciphertext and flag go together, or nothing changes
	prior, err := m.cache.GetSavedPassword(ctx)
	hadSaved := err == nil && prior != ""
	if err != nil && !errors.Is(err, store.ErrFieldNotFound) {
		return err
	}

	if err = m.cache.ClearSavedPassword(ctx); err != nil {
		return err
	}
	if err = m.cache.SetFlag(ctx, store.FlagSavePasswordOnNextLogin, false); err != nil {
		if hadSaved {
			if rbErr := m.cache.SetSavedPassword(ctx, prior); rbErr != nil {
				m.log.Error().Err(rbErr).Msg("roll back saved password after failed flag clear")
			}
		}
		return err
	}
	return nil
}

func (m *sessionManager) GetSavePasswordOnNextLogin(ctx context.Context) (bool, error) {
	return m.cache.GetFlag(ctx, store.FlagSavePasswordOnNextLogin)
}

func (m *sessionManager) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	if enabled {
		return m.cache.SetFlag(ctx, store.FlagBiometricsEnabled, true)
	}

	// a saved password cannot outlive the biometric unlock guarding it
	if err := m.SetSavePasswordOnNextLogin(ctx, false); err != nil {
		return err
	}

	// No rollback if this final write fails: restoring the cleared
	// password would recreate a secret the user asked to drop. Failing
	// with the password gone and biometrics still on is the safe
	// direction of the invariant.
	return m.cache.SetFlag(ctx, store.FlagBiometricsEnabled, false)
}

func (m *sessionManager) IsBiometricEnabled(ctx context.Context) (bool, error) {
	return m.cache.GetFlag(ctx, store.FlagBiometricsEnabled)
}

func (m *sessionManager) GetSavedPassword(ctx context.Context) (string, error) {
	blob, err := m.cache.GetSavedPassword(ctx)
	if err != nil {
		return "", err
	}
	return m.device.DecryptPassword(blob)
}

func (m *sessionManager) HasSavedPassword(ctx context.Context) bool {
	blob, err := m.cache.GetSavedPassword(ctx)
	return err == nil && blob != ""
}
