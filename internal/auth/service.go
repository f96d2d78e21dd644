// Package auth implements username/password accounts with long-lived
// bearer-token sessions.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bursteinalan/fooder/internal/model"
	"github.com/bursteinalan/fooder/internal/store"
)

const sessionTTL = 365 * 24 * time.Hour

var (
	// ErrUsernameTaken is returned by Signup when the username exists.
	ErrUsernameTaken = errors.New("username taken")
	// ErrInvalidCredentials is returned by Login for a bad username or
	// password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	store store.Store

	// seedOverrides copies the common category mapping into each new
	// user's personal overrides at signup, giving them an editable
	// snapshot instead of a live view.
	seedOverrides bool
}

func NewService(st store.Store, seedOverrides bool) *Service {
	return &Service{store: st, seedOverrides: seedOverrides}
}

// Signup creates the account and an initial session.
func (s *Service) Signup(username, password string) (*model.User, *model.Session, error) {
	username = strings.TrimSpace(username)

	existing, err := s.store.GetUserByUsername(username)
	if err != nil {
		return nil, nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Overrides:    map[string]string{},
		CreatedAt:    time.Now().UTC(),
	}
	if s.seedOverrides {
		rules, err := s.store.CommonCategories()
		if err != nil {
			return nil, nil, fmt.Errorf("seed categories: %w", err)
		}
		for _, rule := range rules {
			user.Overrides[rule.Keyword] = rule.Category
		}
	}
	if err := s.store.PutUser(user); err != nil {
		return nil, nil, fmt.Errorf("create user: %w", err)
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Login verifies the password and issues a fresh session.
func (s *Service) Login(username, password string) (*model.User, *model.Session, error) {
	user, err := s.store.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *Service) createSession(userID string) (*model.Session, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	now := time.Now().UTC()
	session := &model.Session{
		Token:     hex.EncodeToString(buf),
		UserID:    userID,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}
	if err := s.store.PutSession(session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// ValidateToken resolves a bearer token to a user id. Expired sessions
// are deleted on sight. Returns "" for unknown or expired tokens.
func (s *Service) ValidateToken(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	session, err := s.store.GetSession(token)
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	if session == nil {
		return "", nil
	}
	if time.Now().After(session.ExpiresAt) {
		if err := s.store.DeleteSession(token); err != nil {
			return "", fmt.Errorf("delete expired session: %w", err)
		}
		return "", nil
	}
	return session.UserID, nil
}

// Logout invalidates the session. Unknown tokens are a no-op.
func (s *Service) Logout(token string) error {
	return s.store.DeleteSession(token)
}

// User returns the account for the given id, or nil if it is gone.
func (s *Service) User(id string) (*model.User, error) {
	return s.store.GetUser(id)
}
