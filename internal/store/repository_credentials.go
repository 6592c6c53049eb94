package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/models"
)

// Keys of the credentials table. One row per key.
const (
	credentialUserData  = "user_data"
	credentialAuthToken = "auth_token"
)

type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, log *logger.Logger) CredentialRepository {
	return &credentialRepository{db: db, logger: log}
}

func (r *credentialRepository) SaveSession(ctx context.Context, session models.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = upsertCredentialTx(ctx, tx, credentialUserData, string(userJSON)); err != nil {
		return err
	}
	if err = upsertCredentialTx(ctx, tx, credentialAuthToken, session.Token); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *credentialRepository) GetSession(ctx context.Context) (models.Session, error) {
	query, args, err := buildSelectCredentialsQuery(credentialUserData, credentialAuthToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string, 2)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values[key] = value
	}
	if err = rows.Err(); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	userJSON, haveUser := values[credentialUserData]
	token, haveToken := values[credentialAuthToken]
	if !haveUser && !haveToken {
		return models.Session{}, ErrSessionNotFound
	}

	var user *models.User
	if haveUser && userJSON != "" && userJSON != "null" {
		user = &models.User{}
		if err = json.Unmarshal([]byte(userJSON), user); err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
		}
	}

	return models.Session{
		User:          user,
		Token:         token,
		Authenticated: user != nil && token != "",
	}, nil
}

func (r *credentialRepository) DeleteSession(ctx context.Context) error {
	return r.deleteCredentials(ctx, credentialUserData, credentialAuthToken)
}

func (r *credentialRepository) SaveUser(ctx context.Context, user models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user record: %w", err)
	}
	return r.upsertCredential(ctx, credentialUserData, string(userJSON))
}

func (r *credentialRepository) SaveToken(ctx context.Context, token string) error {
	return r.upsertCredential(ctx, credentialAuthToken, token)
}

func (r *credentialRepository) DeleteToken(ctx context.Context) error {
	return r.deleteCredentials(ctx, credentialAuthToken)
}

func (r *credentialRepository) upsertCredential(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertCredentialQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *credentialRepository) deleteCredentials(ctx context.Context, keys ...string) error {
	query, args, err := buildDeleteCredentialsQuery(keys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertCredentialTx(ctx context.Context, tx *sql.Tx, key, value string) error {
	query, args, err := buildUpsertCredentialQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func buildSelectCredentialsQuery(keys ...string) (string, []any, error) {
	return sq.Select("key", "value").
		From("credentials").
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildUpsertCredentialQuery(key, value string) (string, []any, error) {
	return sq.Insert("credentials").
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCredentialsQuery(keys ...string) (string, []any, error) {
	return sq.Delete("credentials").
		Where(sq.Eq{"key": keys}).
		ToSql()
}
