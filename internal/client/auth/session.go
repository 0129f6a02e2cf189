// Package auth manages the client's authentication session: durable token
// storage, expiry checks, and transparent access-token refresh.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	httpClient "github.com/refkeeper/refkeeper/internal/client/api"
	"github.com/refkeeper/refkeeper/internal/client/storage"
	"github.com/refkeeper/refkeeper/pkg/api"
)

// ErrNotAuthenticated indicates no valid session exists.
var ErrNotAuthenticated = errors.New("not authenticated")

// refreshLeeway renews the access token slightly before it actually expires
// so an in-flight sync doesn't race the expiry.
const refreshLeeway = 30 * time.Second

// Session provides authenticated access tokens to the rest of the client.
type Session struct {
	store     storage.SessionStorage
	apiClient httpClient.ClientAPI
	logger    *slog.Logger
	now       func() time.Time
}

// NewSession creates a session service over durable session storage.
func NewSession(store storage.SessionStorage, apiClient httpClient.ClientAPI, logger *slog.Logger) *Session {
	return &Session{
		store:     store,
		apiClient: apiClient,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates an account on the server and logs in with the new
// credentials, so a fresh install is ready to sync after one command.
func (s *Session) Register(ctx context.Context, username, password string) error {
	_, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("Registered", "username", username)
	return s.Login(ctx, username, password)
}

// Login authenticates against the server and persists the session.
func (s *Session) Login(ctx context.Context, username, password string) error {
	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	session := &storage.Session{
		Username:     username,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.expiresAt(resp),
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "username", username)
	return nil
}

// Logout removes the stored session.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a usable session exists: a non-expired
// access token, or an expired one with a refresh token to renew it.
func (s *Session) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	if !s.expired(session) {
		return true, nil
	}
	return session.RefreshToken != "", nil
}

// Username returns the logged-in username.
func (s *Session) Username(ctx context.Context) (string, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", err
	}
	return session.Username, nil
}

// AccessToken returns a valid access token, refreshing it first when the
// stored one has expired.
func (s *Session) AccessToken(ctx context.Context) (string, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	if !s.expired(session) {
		return session.AccessToken, nil
	}

	if session.RefreshToken == "" {
		return "", ErrNotAuthenticated
	}

	s.logger.Debug("Access token expired, refreshing")

	resp, err := s.apiClient.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	session.AccessToken = resp.AccessToken
	if resp.RefreshToken != "" {
		session.RefreshToken = resp.RefreshToken
	}
	session.ExpiresAt = s.expiresAt(resp)

	if err := s.store.SaveSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to save refreshed session: %w", err)
	}

	return session.AccessToken, nil
}

// ExpiresAt returns the stored access-token expiry.
func (s *Session) ExpiresAt(ctx context.Context) (time.Time, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return time.Time{}, ErrNotAuthenticated
		}
		return time.Time{}, err
	}
	return time.Unix(session.ExpiresAt, 0), nil
}

func (s *Session) expired(session *storage.Session) bool {
	return s.now().Add(refreshLeeway).After(time.Unix(session.ExpiresAt, 0))
}

// expiresAt derives the access-token expiry from the token response,
// falling back to the JWT exp claim when the server omits expires_in.
func (s *Session) expiresAt(resp *api.TokenResponse) int64 {
	if resp.ExpiresIn > 0 {
		return s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix()
	}
	if exp, err := tokenExpiry(resp.AccessToken); err == nil {
		return exp.Unix()
	}
	// No expiry information at all: assume a short-lived token
	return s.now().Add(15 * time.Minute).Unix()
}

// tokenExpiry extracts the exp claim without verifying the signature.
// Verification is the server's job; the client only needs the timestamp.
func tokenExpiry(accessToken string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}
	return claims.ExpiresAt.Time, nil
}
