package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmontesdeoca/passvault/models"
)

// expiresAtLayout is the wire format for the persisted expiry instant.
const expiresAtLayout = time.RFC3339Nano

// fieldStore is the narrow key-value contract each backend implements.
// delete of an absent name must not be an error.
type fieldStore interface {
	set(ctx context.Context, name, value string) error
	get(ctx context.Context, name string) (string, error)
	delete(ctx context.Context, name string) error
}

// cache adapts a fieldStore into the full [CredentialCache] contract, so
// the session-assembly and flag-encoding logic lives in one place.
type cache struct {
	fs fieldStore
}

func newCache(fs fieldStore) *cache {
	return &cache{fs: fs}
}

// sessionFields are the names removed by ClearSession. Email is deliberately
// absent: biometric re-entry needs it after logout.
var sessionFields = []string{
	FieldUserID, FieldRole, FieldSQLToken, FieldAPIToken, FieldExpiresAt,
}

func (c *cache) SetSession(ctx context.Context, session models.Session) error {
	pairs := []struct{ name, value string }{
		{FieldUserID, session.UserID},
		{FieldEmail, session.Email},
		{FieldRole, session.Role},
		{FieldSQLToken, session.SQLToken},
		{FieldAPIToken, session.APIToken},
		{FieldExpiresAt, session.ExpiresAt.UTC().Format(expiresAtLayout)},
	}
	for _, p := range pairs {
		if err := c.fs.set(ctx, p.name, p.value); err != nil {
			return fmt.Errorf("set session field %s: %w", p.name, err)
		}
	}
	return nil
}

func (c *cache) GetSession(ctx context.Context) (models.Session, error) {
	userID, err := c.fs.get(ctx, FieldUserID)
	if err != nil {
		return models.Session{}, fmt.Errorf("get session: %w", err)
	}

	session := models.Session{UserID: userID}
	if session.Email, err = c.getOrEmpty(ctx, FieldEmail); err != nil {
		return models.Session{}, err
	}
	if session.Role, err = c.getOrEmpty(ctx, FieldRole); err != nil {
		return models.Session{}, err
	}
	if session.SQLToken, err = c.getOrEmpty(ctx, FieldSQLToken); err != nil {
		return models.Session{}, err
	}
	if session.APIToken, err = c.getOrEmpty(ctx, FieldAPIToken); err != nil {
		return models.Session{}, err
	}

	raw, err := c.getOrEmpty(ctx, FieldExpiresAt)
	if err != nil {
		return models.Session{}, err
	}
	if raw != "" {
		session.ExpiresAt, err = time.Parse(expiresAtLayout, raw)
		if err != nil {
			return models.Session{}, fmt.Errorf("%w: parse %s: %v", ErrStorage, FieldExpiresAt, err)
		}
	}

	return session, nil
}

// getOrEmpty treats an absent field as an empty string; a partially written
// session should still be readable.
func (c *cache) getOrEmpty(ctx context.Context, name string) (string, error) {
	value, err := c.fs.get(ctx, name)
	if errors.Is(err, ErrFieldNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session field %s: %w", name, err)
	}
	return value, nil
}

func (c *cache) ClearSession(ctx context.Context) error {
	for _, name := range sessionFields {
		if err := c.fs.delete(ctx, name); err != nil {
			return fmt.Errorf("clear session field %s: %w", name, err)
		}
	}
	return nil
}

func (c *cache) SetField(ctx context.Context, name, value string) error {
	return c.fs.set(ctx, name, value)
}

func (c *cache) GetField(ctx context.Context, name string) (string, error) {
	return c.fs.get(ctx, name)
}

func (c *cache) SetSavedPassword(ctx context.Context, ciphertext string) error {
	return c.fs.set(ctx, FieldSavedPassword, ciphertext)
}

func (c *cache) GetSavedPassword(ctx context.Context) (string, error) {
	return c.fs.get(ctx, FieldSavedPassword)
}

func (c *cache) ClearSavedPassword(ctx context.Context) error {
	return c.fs.delete(ctx, FieldSavedPassword)
}

func (c *cache) SetFlag(ctx context.Context, name string, value bool) error {
	return c.fs.set(ctx, name, strconv.FormatBool(value))
}

func (c *cache) GetFlag(ctx context.Context, name string) (bool, error) {
	value, err := c.fs.get(ctx, name)
	if errors.Is(err, ErrFieldNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	flag, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: parse flag %s: %v", ErrStorage, name, err)
	}
	return flag, nil
}
