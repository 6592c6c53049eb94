package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/internal/mock"
	"github.com/nutriguide/go-nutri-client/internal/store"
	"github.com/nutriguide/go-nutri-client/models"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockAuthAdapter, *mock.MockCredentialRepository) {
	t.Helper()

	mockAdapter := mock.NewMockAuthAdapter(ctrl)
	mockCreds := mock.NewMockCredentialRepository(ctrl)

	svc := NewSessionService(mockAdapter, mockCreds, logger.Nop()).(*sessionService)
	return svc, mockAdapter, mockCreds
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return token
}

func testUser() *models.User {
	return &models.User{ID: 1, Username: "alice", Email: "alice@example.com"}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestSessionService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	resp := models.AuthResponse{
		APIResponse: models.APIResponse{Success: true},
		User:        testUser(),
		Token:       "sometoken",
	}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, "alice@example.com", "secret").Return(resp, nil),
		mockAdapter.EXPECT().SetToken(ctx, "sometoken").Return(nil),
		mockCreds.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.True(t, s.Authenticated)
				assert.Equal(t, "sometoken", s.Token)
				require.NotNil(t, s.User)
				assert.Equal(t, "alice", s.User.Username)
				return nil
			},
		),
	)

	got, err := svc.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, got.Authenticated)
	assert.Equal(t, got, svc.Session())
}

func TestSessionService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, "alice@example.com", "wrong").
		Return(models.AuthResponse{}, errors.New("client unauthorized"))

	_, err := svc.Login(ctx, "alice@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Login_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// Success envelope without a token must not establish a session.
	resp := models.AuthResponse{
		APIResponse: models.APIResponse{Success: true},
		User:        testUser(),
	}
	mockAdapter.EXPECT().Login(ctx, "alice@example.com", "secret").Return(resp, nil)

	_, err := svc.Login(ctx, "alice@example.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Login_PersistFailureLeavesLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	resp := models.AuthResponse{User: testUser(), Token: "sometoken"}

	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(resp, nil)
	mockAdapter.EXPECT().SetToken(ctx, "sometoken").Return(nil)
	mockCreds.EXPECT().SaveSession(ctx, gomock.Any()).Return(errors.New("database is locked"))

	_, err := svc.Login(ctx, "alice@example.com", "secret")
	require.Error(t, err)
	assert.True(t, svc.Session().IsZero())
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestSessionService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	resp := models.AuthResponse{User: testUser(), Token: "sometoken"}

	gomock.InOrder(
		mockAdapter.EXPECT().Register(ctx, "alice", "alice@example.com", "secret").Return(resp, nil),
		mockAdapter.EXPECT().SetToken(ctx, "sometoken").Return(nil),
		mockCreds.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil),
	)

	got, err := svc.Register(ctx, "alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, got.Authenticated)
}

func TestSessionService_Register_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Register(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, errors.New("conflict"))

	_, err := svc.Register(ctx, "alice", "alice@example.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestSessionService_Initialize_NoPersistedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockCreds.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrSessionNotFound)

	require.NoError(t, svc.Initialize(ctx))
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Initialize_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedJWT(t, time.Now().Add(time.Hour))
	persisted := models.Session{User: testUser(), Token: token, Authenticated: true}

	gomock.InOrder(
		mockCreds.EXPECT().GetSession(ctx).Return(persisted, nil),
		mockAdapter.EXPECT().SetToken(ctx, token).Return(nil),
	)

	require.NoError(t, svc.Initialize(ctx))
	got := svc.Session()
	assert.True(t, got.Authenticated)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
}

func TestSessionService_Initialize_CorruptStateStartsLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockCreds.EXPECT().GetSession(ctx).Return(models.Session{}, store.ErrCorruptSession),
		mockCreds.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Initialize(ctx))
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Initialize_IncompleteStateStartsLoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// Token without user record: never restore a half-populated session.
	partial := models.Session{Token: "sometoken"}

	gomock.InOrder(
		mockCreds.EXPECT().GetSession(ctx).Return(partial, nil),
		mockCreds.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Initialize(ctx))
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Initialize_ExpiredTokenDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	token := signedJWT(t, time.Now().Add(-time.Hour))
	persisted := models.Session{User: testUser(), Token: token, Authenticated: true}

	gomock.InOrder(
		mockCreds.EXPECT().GetSession(ctx).Return(persisted, nil),
		mockCreds.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Initialize(ctx))
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Initialize_OpaqueTokenRestored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// Non-JWT tokens cannot be checked locally; the server stays the judge.
	persisted := models.Session{User: testUser(), Token: "opaque-token", Authenticated: true}

	gomock.InOrder(
		mockCreds.EXPECT().GetSession(ctx).Return(persisted, nil),
		mockAdapter.EXPECT().SetToken(ctx, "opaque-token").Return(nil),
	)

	require.NoError(t, svc.Initialize(ctx))
	assert.True(t, svc.Session().Authenticated)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestSessionService_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.session = models.Session{User: testUser(), Token: "sometoken", Authenticated: true}

	gomock.InOrder(
		mockAdapter.EXPECT().Logout(ctx).Return(nil),
		mockAdapter.EXPECT().ClearToken(ctx).Return(nil),
		mockCreds.EXPECT().DeleteSession(ctx).Return(nil),
	)

	require.NoError(t, svc.Logout(ctx))
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Logout_ServerFailureStillClearsLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.session = models.Session{User: testUser(), Token: "sometoken", Authenticated: true}

	mockAdapter.EXPECT().Logout(ctx).Return(errors.New("connection refused"))
	mockAdapter.EXPECT().ClearToken(ctx).Return(nil)
	mockCreds.EXPECT().DeleteSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.True(t, svc.Session().IsZero())
}

func TestSessionService_Logout_LocalFailureReportedButCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.session = models.Session{User: testUser(), Token: "sometoken", Authenticated: true}

	mockAdapter.EXPECT().Logout(ctx).Return(nil)
	mockAdapter.EXPECT().ClearToken(ctx).Return(nil)
	mockCreds.EXPECT().DeleteSession(ctx).Return(errors.New("database is locked"))

	err := svc.Logout(ctx)
	require.Error(t, err)
	assert.True(t, svc.Session().IsZero())
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestSessionService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	svc.session = models.Session{User: testUser(), Token: "sometoken", Authenticated: true}

	bio := "lifting and lentils"
	updated := *testUser()
	updated.Bio = &bio

	gomock.InOrder(
		mockAdapter.EXPECT().UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio}).Return(updated, nil),
		mockCreds.EXPECT().SaveUser(ctx, updated).Return(nil),
	)

	got, err := svc.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)

	session := svc.Session()
	assert.True(t, session.Authenticated)
	assert.Equal(t, "sometoken", session.Token)
	require.NotNil(t, session.User.Bio)
}

func TestSessionService_UpdateProfile_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── Subscriptions ────────────────────────────────────────────────────────────

func TestSessionService_Subscribe_NotifiedOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	var got []models.Session
	svc.Subscribe(func(s models.Session) { got = append(got, s) })

	resp := models.AuthResponse{User: testUser(), Token: "sometoken"}
	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(resp, nil)
	mockAdapter.EXPECT().SetToken(ctx, "sometoken").Return(nil)
	mockCreds.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.True(t, got[0].Authenticated)
}

func TestSessionService_Subscribe_NoNotificationOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	calls := 0
	svc.Subscribe(func(models.Session) { calls++ })

	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, errors.New("client unauthorized"))

	_, err := svc.Login(ctx, "alice@example.com", "wrong")
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestSessionService_Unsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	calls := 0
	unsubscribe := svc.Subscribe(func(models.Session) { calls++ })
	unsubscribe()
	unsubscribe() // safe to call twice

	mockAdapter.EXPECT().Logout(ctx).Return(nil)
	mockAdapter.EXPECT().ClearToken(ctx).Return(nil)
	mockCreds.EXPECT().DeleteSession(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
	assert.Zero(t, calls)
}

func TestSessionService_SubscriberMayCallBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockCreds := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	// A callback reading the session must not deadlock.
	var observed models.Session
	svc.Subscribe(func(models.Session) { observed = svc.Session() })

	resp := models.AuthResponse{User: testUser(), Token: "sometoken"}
	mockAdapter.EXPECT().Login(ctx, gomock.Any(), gomock.Any()).Return(resp, nil)
	mockAdapter.EXPECT().SetToken(ctx, "sometoken").Return(nil)
	mockCreds.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil)

	_, err := svc.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
	assert.True(t, observed.Authenticated)
}

// ── Dispose ──────────────────────────────────────────────────────────────────

func TestSessionService_Dispose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	calls := 0
	svc.Subscribe(func(models.Session) { calls++ })
	svc.Dispose()

	_, err := svc.Login(context.Background(), "alice@example.com", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceDisposed)
	assert.Zero(t, calls)

	err = svc.Initialize(context.Background())
	assert.ErrorIs(t, err, ErrServiceDisposed)
}

// ── tokenExpired ─────────────────────────────────────────────────────────────

func Test_tokenExpired(t *testing.T) {
	t.Run("future exp", func(t *testing.T) {
		assert.False(t, tokenExpired(signedJWT(t, time.Now().Add(time.Hour))))
	})

	t.Run("past exp", func(t *testing.T) {
		assert.True(t, tokenExpired(signedJWT(t, time.Now().Add(-time.Minute))))
	})

	t.Run("opaque token", func(t *testing.T) {
		assert.False(t, tokenExpired("not-a-jwt"))
	})

	t.Run("jwt without exp", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).
			SignedString([]byte("test-signing-key"))
		require.NoError(t, err)
		assert.False(t, tokenExpired(token))
	})
}
