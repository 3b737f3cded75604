package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/rosterhub/rosterhub/internal/dependencies/clock"
	"github.com/rosterhub/rosterhub/internal/dependencies/random"
	"github.com/rosterhub/rosterhub/internal/model"
	"github.com/rosterhub/rosterhub/internal/storage"
)

// ErrInvalidCredentials is returned for every login failure. It deliberately
// does not distinguish an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the resolved (user, role, player) tuple derived from a
// verified session token
type Identity struct {
	UserID   model.UserID
	Role     model.Role
	PlayerID model.PlayerID
}

// IsAdmin reports whether the identity holds the admin role
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// Config holds configuration for the auth service
type Config struct {
	// TokenTTL is the session token validity window
	TokenTTL time.Duration
	// Secret signs session tokens. If empty, an ephemeral secret is
	// generated; outstanding tokens then die with the process, like the
	// in-memory store they guard.
	Secret []byte
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenTTL: 7 * 24 * time.Hour,
	}
}

// Service handles credential verification and session token issuance
type Service struct {
	storage storage.Storage
	codec   *Codec
	clock   clock.Clock
	random  random.Random
}

// New creates a new auth service
func New(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config) *Service {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = DefaultConfig().TokenTTL
	}
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		_, _ = rand.Read(secret)
	}
	return &Service{
		storage: store,
		codec:   NewCodec(secret, cfg.TokenTTL, clk),
		clock:   clk,
		random:  rnd,
	}
}

// Codec exposes the token codec (used by tests and middleware wiring)
func (s *Service) Codec() *Codec {
	return s.codec
}

// Login authenticates a username/password pair and issues a session token.
// Unknown usernames and wrong passwords fail identically.
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate verifies a session token and resolves the identity it carries
func (s *Service) Authenticate(token string) (Identity, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID:   claims.UserID(),
		Role:     claims.Role,
		PlayerID: claims.PlayerID,
	}, nil
}

// Me re-resolves an identity against the credential store. It errors with
// model.ErrUserNotFound when the account behind a still-valid token has
// been deleted.
func (s *Service) Me(ctx context.Context, identity Identity) (*model.User, error) {
	return s.storage.GetUser(ctx, identity.UserID)
}

// SeedAdmin provisions the admin account at startup. It is a no-op when the
// username is already taken, so restarts against shared storage are safe.
func (s *Service) SeedAdmin(ctx context.Context, username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := &model.User{
		ID:           model.UserID("user-" + s.random.String(12, random.IDAlphabet)),
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			return nil
		}
		return err
	}
	return nil
}

// Scope applies ownership filtering to a record set. Admins see every
// record; a player identity sees the order-preserving subsequence for
// which owns(record, playerID) holds. The input slice is never mutated.
func Scope[T any](identity Identity, records []T, owns func(T, model.PlayerID) bool) []T {
	if identity.IsAdmin() {
		return records
	}
	scoped := make([]T, 0, len(records))
	for _, record := range records {
		if owns(record, identity.PlayerID) {
			scoped = append(scoped, record)
		}
	}
	return scoped
}
