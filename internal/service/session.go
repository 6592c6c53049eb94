package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nutriguide/go-nutri-client/internal/logger"
	"github.com/nutriguide/go-nutri-client/internal/store"
	"github.com/nutriguide/go-nutri-client/models"
)

type sessionService struct {
	adapter AuthAdapter
	creds   CredentialRepository
	logger  *logger.Logger

	mu       sync.RWMutex
	session  models.Session
	disposed bool
	subs     map[int64]func(models.Session)
	nextSub  int64
}

func NewSessionService(adapter AuthAdapter, creds CredentialRepository, log *logger.Logger) SessionService {
	return &sessionService{
		adapter: adapter,
		creds:   creds,
		logger:  log,
		subs:    make(map[int64]func(models.Session)),
	}
}

func (s *sessionService) Initialize(ctx context.Context) error {
	if err := s.failIfDisposed(); err != nil {
		return err
	}

	persisted, err := s.creds.GetSession(ctx)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return nil
	case errors.Is(err, store.ErrCorruptSession):
		s.logger.Warn().Err(err).Msg("discarding corrupt persisted session")
		s.discardPersisted(ctx)
		return nil
	case err != nil:
		return fmt.Errorf("error loading persisted session: %w", err)
	}

	if !persisted.Authenticated {
		s.logger.Warn().Msg("discarding incomplete persisted session")
		s.discardPersisted(ctx)
		return nil
	}

	if tokenExpired(persisted.Token) {
		s.logger.Info().Msg("persisted session token expired, starting logged out")
		s.discardPersisted(ctx)
		return nil
	}

	if err = s.adapter.SetToken(ctx, persisted.Token); err != nil {
		return fmt.Errorf("error restoring token: %w", err)
	}

	s.logger.Info().Int64("user_id", persisted.User.ID).Msg("session restored")
	s.setSession(persisted)

	return nil
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := s.failIfDisposed(); err != nil {
		return models.Session{}, err
	}

	resp, err := s.adapter.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return s.establishSession(ctx, resp)
}

func (s *sessionService) Register(ctx context.Context, username, email, password string) (models.Session, error) {
	if err := s.failIfDisposed(); err != nil {
		return models.Session{}, err
	}

	resp, err := s.adapter.Register(ctx, username, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return s.establishSession(ctx, resp)
}

// establishSession turns a successful auth response into the active session.
// The token goes to the adapter first so the persisted mirror and the request
// header can never disagree, then the full session is stored.
func (s *sessionService) establishSession(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	if resp.Token == "" || resp.User == nil {
		return models.Session{}, ErrNoToken
	}

	if err := s.adapter.SetToken(ctx, resp.Token); err != nil {
		return models.Session{}, fmt.Errorf("error storing token: %w", err)
	}

	session := models.Session{
		User:          resp.User,
		Token:         resp.Token,
		Authenticated: true,
	}

	if err := s.creds.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error persisting session: %w", err)
	}

	s.logger.Info().Int64("user_id", session.User.ID).Msg("session established")
	s.setSession(session)

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.failIfDisposed(); err != nil {
		return err
	}

	// Best effort: the local session is cleared no matter what the server
	// says, so a dead backend cannot trap the user in a logged-in state.
	if err := s.adapter.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}

	var cleanupErr error
	if err := s.adapter.ClearToken(ctx); err != nil {
		cleanupErr = errors.Join(cleanupErr, fmt.Errorf("error clearing token: %w", err))
	}
	if err := s.creds.DeleteSession(ctx); err != nil {
		cleanupErr = errors.Join(cleanupErr, fmt.Errorf("error deleting persisted session: %w", err))
	}

	s.logger.Info().Msg("logged out")
	s.setSession(models.Session{})

	return cleanupErr
}

func (s *sessionService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if err := s.failIfDisposed(); err != nil {
		return models.User{}, err
	}

	current := s.Session()
	if !current.Authenticated {
		return models.User{}, ErrNotAuthenticated
	}

	user, err := s.adapter.UpdateProfile(ctx, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}

	if err = s.creds.SaveUser(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error persisting updated profile: %w", err)
	}

	s.setSession(models.Session{
		User:          &user,
		Token:         current.Token,
		Authenticated: true,
	})

	return user, nil
}

func (s *sessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) Subscribe(fn func(models.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *sessionService) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.subs = make(map[int64]func(models.Session))
}

// setSession swaps the session under lock, then notifies subscribers outside
// it so callbacks may call back into the service.
func (s *sessionService) setSession(session models.Session) {
	s.mu.Lock()
	s.session = session
	subs := make([]func(models.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(session)
	}
}

func (s *sessionService) failIfDisposed() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.disposed {
		return ErrServiceDisposed
	}
	return nil
}

// discardPersisted removes unusable persisted state. Failures are logged and
// swallowed; startup must not break on a bad local record.
func (s *sessionService) discardPersisted(ctx context.Context) {
	if err := s.creds.DeleteSession(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete unusable persisted session")
	}
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Opaque or claimless tokens are never treated as expired; the server remains
// the authority and will answer 401 if the token is in fact dead.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
