// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/jmontesdeoca/passvault/internal/config"
	"github.com/jmontesdeoca/passvault/internal/logger"
	"github.com/jmontesdeoca/passvault/models"
)

const (
	registerEndpoint             = "/api/auth/register"
	loginEndpoint                = "/api/auth/login"
	coreGetIVEndpoint            = "/api/core/get-iv"
	coreRegisterPasswordEndpoint = "/api/core/register-password"
	coreCRUDEndpoint             = "/api/core"
)

// expiry drift between the JWT exp claim and the server-reported minute
// count tolerated before a warning is logged.
const expiryDriftTolerance = time.Minute

type httpServerAdapter struct {
	client *resty.Client
	log    *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a ServerAdapter speaking the vault API's
// REST dialect over the configured base address.
func NewHTTPServerAdapter(cfg config.Adapter, log *logger.Logger) ServerAdapter {
	address := strings.TrimRight(cfg.HTTPAddress, "/")
	if address == "" {
		address = "http://localhost:8080"
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(address).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli, log: log}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Logout() {
	h.SetToken("")
}

func (h *httpServerAdapter) Register(ctx context.Context, email, password, confirmPassword string) error {
	body := models.RegisterRequest{Email: email, Password1: password, Password2: confirmPassword}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(registerEndpoint)
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decodeEnvelope(resp, nil)
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	body := models.LoginRequest{Email: email, Password: password}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(loginEndpoint)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var result models.LoginResult
	if err = decodeEnvelope(resp, &result); err != nil {
		return models.LoginResult{}, err
	}

	h.checkTokenExpiry(result)
	h.SetToken(result.APIToken)
	return result, nil
}

func (h *httpServerAdapter) GetIV(ctx context.Context, owner models.CoreUserRequest, password string) (string, error) {
	return h.requestIV(ctx, coreGetIVEndpoint, owner, password)
}

func (h *httpServerAdapter) RegisterCorePassword(ctx context.Context, owner models.CoreUserRequest, password string) (string, error) {
	return h.requestIV(ctx, coreRegisterPasswordEndpoint, owner, password)
}

func (h *httpServerAdapter) requestIV(ctx context.Context, endpoint string, owner models.CoreUserRequest, password string) (string, error) {
	body := models.IVRequest{Password: password, CoreUser: owner}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return "", fmt.Errorf("iv request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var result models.IVResult
	if err = decodeEnvelope(resp, &result); err != nil {
		return "", err
	}
	return result.IV, nil
}

func (h *httpServerAdapter) GetRecords(ctx context.Context, owner models.CoreUserRequest) ([]models.SecretRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"user_id":   owner.UserID,
			"sql_token": owner.SQLToken,
		}).
		Get(coreCRUDEndpoint)
	if err != nil {
		return nil, fmt.Errorf("get records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.SecretRecord
	if err = decodeEnvelope(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (h *httpServerAdapter) CreateRecord(ctx context.Context, record models.SecretRecord, owner models.CoreUserRequest) (models.SecretRecord, error) {
	return h.writeRecord(ctx, resty.MethodPost, record, owner)
}

func (h *httpServerAdapter) UpdateRecord(ctx context.Context, record models.SecretRecord, owner models.CoreUserRequest) (models.SecretRecord, error) {
	return h.writeRecord(ctx, resty.MethodPut, record, owner)
}

func (h *httpServerAdapter) writeRecord(ctx context.Context, method string, record models.SecretRecord, owner models.CoreUserRequest) (models.SecretRecord, error) {
	body := models.RecordRequest{
		ID:       record.ID,
		FieldA:   record.FieldA,
		FieldB:   record.FieldB,
		FieldC:   record.FieldC,
		CoreUser: owner,
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Execute(method, coreCRUDEndpoint)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("%s record request: %w", strings.ToLower(method), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretRecord{}, err
	}

	var stored models.SecretRecord
	if err = decodeEnvelope(resp, &stored); err != nil {
		return models.SecretRecord{}, err
	}
	return stored, nil
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, recordID string, owner models.CoreUserRequest) error {
	body := models.DeleteRecordRequest{ID: recordID, CoreUser: owner}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Delete(coreCRUDEndpoint)
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	return decodeEnvelope(resp, nil)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// checkTokenExpiry compares the JWT exp claim against the minute count the
// server reported alongside it. The server value always wins; a mismatch
// beyond the tolerance is only logged.
func (h *httpServerAdapter) checkTokenExpiry(result models.LoginResult) {
	token, _, err := jwt.NewParser().ParseUnverified(result.APIToken, jwt.MapClaims{})
	if err != nil {
		h.log.Warn().Err(err).Msg("api token is not a parseable JWT")
		return
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		h.log.Warn().Msg("api token carries no exp claim")
		return
	}

	reported := time.Now().Add(time.Duration(result.ExpireMinutes) * time.Minute)
	if drift := exp.Time.Sub(reported); drift > expiryDriftTolerance || drift < -expiryDriftTolerance {
		h.log.Warn().
			Time("jwt_exp", exp.Time).
			Int("expire_minutes", result.ExpireMinutes).
			Msg("jwt exp claim disagrees with reported session length")
	}
}

// decodeEnvelope unwraps the API's response envelope, decoding the data
// payload into out when out is non-nil. A well-formed envelope with
// is_success=false is a server-side failure even under a 2xx status.
func decodeEnvelope(resp *resty.Response, out any) error {
	var envelope models.APIEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}

	if !envelope.IsSuccess {
		message := strings.TrimSpace(envelope.Message)
		if message == "" {
			message = http.StatusText(envelope.StatusCode)
		}
		return fmt.Errorf("%w: %s", ErrServerFailure, message)
	}

	if out == nil {
		return nil
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("%w: envelope carries no data", ErrServerFailure)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decode envelope data: %w", err)
	}
	return nil
}
