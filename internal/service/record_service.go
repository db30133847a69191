// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 J. Montesdeoca

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmontesdeoca/passvault/internal/adapter"
	"github.com/jmontesdeoca/passvault/internal/crypto"
	"github.com/jmontesdeoca/passvault/internal/logger"
	"github.com/jmontesdeoca/passvault/internal/utils"
	"github.com/jmontesdeoca/passvault/models"
)

type recordService struct {
	adapter adapter.ServerAdapter
	engine  crypto.Engine
	session SessionManager
	uuid    *utils.UUIDGenerator
	log     *logger.Logger
}

// NewRecordService creates the vault-record orchestrator. It reads the
// acting user from the session manager and never persists plaintext.
func NewRecordService(serverAdapter adapter.ServerAdapter, engine crypto.Engine, session SessionManager, log *logger.Logger) RecordService {
	return &recordService{
		adapter: serverAdapter,
		engine:  engine,
		session: session,
		uuid:    utils.NewUUIDGenerator(),
		log:     log,
	}
}

// coreUser identifies the acting user from the held session.
func (r *recordService) coreUser() (models.CoreUserRequest, error) {
	session, ok := r.session.CurrentSession()
	if !ok {
		return models.CoreUserRequest{}, ErrNoSession
	}
	return models.CoreUserRequest{UserID: session.UserID, SQLToken: session.SQLToken}, nil
}

func (r *recordService) RegisterVaultPassword(ctx context.Context, password string) (string, error) {
	owner, err := r.coreUser()
	if err != nil {
		return "", err
	}

	iv, err := r.adapter.RegisterCorePassword(ctx, owner, password)
	if err != nil {
		return "", r.mapAdapterError(err)
	}

	r.log.Info().Str("user_id", owner.UserID).Msg("vault password registered")
	return iv, nil
}

func (r *recordService) GetAllRecords(ctx context.Context, password string) ([]models.SecretRecord, error) {
	owner, err := r.coreUser()
	if err != nil {
		return nil, err
	}

	iv, err := r.adapter.GetIV(ctx, owner, password)
	if err != nil {
		return nil, r.mapAdapterError(err)
	}

	records, err := r.adapter.GetRecords(ctx, owner)
	if err != nil {
		return nil, r.mapAdapterError(err)
	}

	decrypted, err := r.engine.DecryptBatch(records, password, iv)
	if err != nil {
		return nil, fmt.Errorf("decrypt records: %w", err)
	}
	return decrypted, nil
}

func (r *recordService) CreateRecord(ctx context.Context, record models.SecretRecord, password string) (models.SecretRecord, error) {
	if record.ID == "" {
		record.ID = r.uuid.Generate()
	}
	return r.writeRecord(ctx, record, password, r.adapter.CreateRecord)
}

func (r *recordService) UpdateRecord(ctx context.Context, record models.SecretRecord, password string) (models.SecretRecord, error) {
	return r.writeRecord(ctx, record, password, r.adapter.UpdateRecord)
}

func (r *recordService) writeRecord(
	ctx context.Context,
	record models.SecretRecord,
	password string,
	upload func(context.Context, models.SecretRecord, models.CoreUserRequest) (models.SecretRecord, error),
) (models.SecretRecord, error) {
	owner, err := r.coreUser()
	if err != nil {
		return models.SecretRecord{}, err
	}
	record.OwnerID = owner.UserID

	iv, err := r.adapter.GetIV(ctx, owner, password)
	if err != nil {
		return models.SecretRecord{}, r.mapAdapterError(err)
	}

	encrypted, err := r.engine.EncryptRecord(record, password, iv)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("encrypt record: %w", err)
	}

	stored, err := upload(ctx, encrypted, owner)
	if err != nil {
		return models.SecretRecord{}, r.mapAdapterError(err)
	}

	plain, err := r.engine.DecryptRecord(stored, password, iv)
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("decrypt stored record: %w", err)
	}
	return plain, nil
}

func (r *recordService) DeleteRecord(ctx context.Context, recordID string) error {
	owner, err := r.coreUser()
	if err != nil {
		return err
	}

	if err = r.adapter.DeleteRecord(ctx, recordID, owner); err != nil {
		return r.mapAdapterError(err)
	}
	return nil
}

// mapAdapterError promotes a 401 to the service's auth error; everything
// else is passed through for errors.Is matching on the adapter sentinels.
func (r *recordService) mapAdapterError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}
	return err
}
