package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/models"
)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &credentialRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveSession_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	user := &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	userJSON, err := json.Marshal(user)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(credentialUserData, string(userJSON)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(credentialAuthToken, "sometoken").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.SaveSession(context.Background(), models.Session{
		User:          user,
		Token:         "sometoken",
		Authenticated: true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_RollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(credentialUserData, sqlmock.AnyArg()).
		WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.SaveSession(context.Background(), models.Session{
		User:  &models.User{ID: 1},
		Token: "sometoken",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	user := models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	userJSON, err := json.Marshal(user)
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(credentialUserData, string(userJSON)).
		AddRow(credentialAuthToken, "sometoken")

	mock.ExpectQuery("SELECT key, value FROM credentials").
		WithArgs(credentialUserData, credentialAuthToken).
		WillReturnRows(rows)

	got, err := repo.GetSession(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Authenticated)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
	assert.Equal(t, "sometoken", got.Token)
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT key, value FROM credentials").
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	_, err := repo.GetSession(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_CorruptUserRecord(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(credentialUserData, "{not json").
		AddRow(credentialAuthToken, "sometoken")

	mock.ExpectQuery("SELECT key, value FROM credentials").
		WillReturnRows(rows)

	_, err := repo.GetSession(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorruptSession)
}

func TestGetSession_TokenWithoutUser(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"key", "value"}).
		AddRow(credentialAuthToken, "sometoken")

	mock.ExpectQuery("SELECT key, value FROM credentials").
		WillReturnRows(rows)

	got, err := repo.GetSession(context.Background())
	require.NoError(t, err)
	assert.False(t, got.Authenticated)
	assert.Nil(t, got.User)
	assert.Equal(t, "sometoken", got.Token)
}

func TestDeleteSession_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM credentials").
		WithArgs(credentialUserData, credentialAuthToken).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteSession(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveToken_Upsert(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(credentialAuthToken, "newtoken").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveToken(context.Background(), "newtoken"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteToken_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM credentials").
		WithArgs(credentialAuthToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteToken(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func Test_buildUpsertCredentialQuery(t *testing.T) {
	query, args, err := buildUpsertCredentialQuery(credentialAuthToken, "sometoken")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO credentials")
	assert.Contains(t, query, "ON CONFLICT(key) DO UPDATE")
	assert.Contains(t, query, "CURRENT_TIMESTAMP")
	assert.Equal(t, []any{credentialAuthToken, "sometoken"}, args)
}

func Test_buildSelectCredentialsQuery(t *testing.T) {
	query, args, err := buildSelectCredentialsQuery(credentialUserData, credentialAuthToken)
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT key, value FROM credentials")
	assert.Contains(t, query, "key IN (?,?)")
	assert.Equal(t, []any{credentialUserData, credentialAuthToken}, args)
}
