// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, logout, and resolving session
// tokens back to user identities.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/chatkeeper/internal/common"
	"github.com/dmitrijs2005/chatkeeper/internal/dbx"
	"github.com/dmitrijs2005/chatkeeper/internal/server/auth"
	"github.com/dmitrijs2005/chatkeeper/internal/server/config"
	"github.com/dmitrijs2005/chatkeeper/internal/server/models"
	"github.com/dmitrijs2005/chatkeeper/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// Credentials bundles everything a successful signup/login hands back:
// a server-stored opaque session token (set as a cookie) and a short-lived
// JWT access token for header-based API clients.
type Credentials struct {
	SessionToken   string
	SessionExpires time.Time
	AccessToken    string
}

// UserService provides authentication-related operations:
// - Register: create users (and start their first session)
// - Login: verify credentials and start a session
// - Authenticate: resolve a session token to a user id
// - Logout: revoke a session
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	sessionValidityDuration     time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		sessionValidityDuration:     cfg.SessionValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password and starts a
// session for it in the same transaction. A taken username yields
// common.ErrorAlreadyExists with no state change.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, *Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	var user *models.User
	var creds *Credentials
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		u, err := repo.Create(ctx, &models.User{Username: username, PasswordHash: hash})
		if err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return err
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		user = u
		var startErr error
		creds, startErr = s.startSession(ctx, u.ID, tx)
		return startErr
	}); err != nil {
		return nil, nil, err
	}
	return user, creds, nil
}

// dummyHash is a bcrypt hash at DefaultCost used when the username is
// unknown, so a login miss costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Login verifies the password against the stored bcrypt hash and, on success,
// starts a new session. Unknown usernames and wrong passwords are both
// reported as common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (*Credentials, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}
	return s.startSession(ctx, user.ID, s.db)
}

// Authenticate resolves a session token to the owning user id. Expired
// sessions are deleted on sight and reported as common.ErrSessionExpired.
func (s *UserService) Authenticate(ctx context.Context, token string) (string, error) {
	repo := s.repomanager.Sessions(s.db)
	session, err := repo.Find(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if session.Expires.Before(time.Now()) {
		_ = repo.Delete(ctx, token)
		return "", common.ErrSessionExpired
	}
	return session.UserID, nil
}

// Logout revokes the session identified by token.
func (s *UserService) Logout(ctx context.Context, token string) error {
	if err := s.repomanager.Sessions(s.db).Delete(ctx, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (s *UserService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateSessionToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) startSession(ctx context.Context, userID string, db dbx.DBTX) (*Credentials, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	token, err := s.generateSessionToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.Sessions(db).Create(ctx, userID, token, s.sessionValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &Credentials{
		SessionToken:   token,
		SessionExpires: time.Now().Add(s.sessionValidityDuration),
		AccessToken:    access,
	}, nil
}
