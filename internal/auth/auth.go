// Package auth implements registration, login, and access token handling.
//
// Credentials are bcrypt-hashed behind the [Hasher] abstraction. Login
// failures are indistinguishable between unknown email and wrong password,
// preventing user enumeration.
package auth

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playhead/internal/models"
	"github.com/desertthunder/playhead/internal/repositories"
	"github.com/desertthunder/playhead/internal/shared"
)

// Credentials is the response to a successful register or login.
type Credentials struct {
	AccessToken string         `json:"access_token"`
	User        models.UserDTO `json:"user"`
}

// Service issues identities: registration, login, and token verification.
type Service struct {
	users  *repositories.UserRepository
	hasher Hasher
	tokens *TokenIssuer
	logger *log.Logger
}

// NewService creates an auth Service with injected dependencies.
func NewService(users *repositories.UserRepository, hasher Hasher, tokens *TokenIssuer, logger *log.Logger) *Service {
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account and issues a token bound to it.
//
// Missing email or password fails validation; an existing email fails with
// [shared.ErrDuplicateUser].
func (s *Service) Register(email, password string) (*Credentials, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password required", shared.ErrValidation)
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, shared.ErrDuplicateUser
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(0, email, hash)
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID())
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID())

	return &Credentials{AccessToken: token, User: user.DTO()}, nil
}

// Login validates a credential pair and issues a token.
//
// Unknown email and wrong password both return [shared.ErrInvalidCredentials].
func (s *Service) Login(email, password string) (*Credentials, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash(), password); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID())
	if err != nil {
		return nil, err
	}

	return &Credentials{AccessToken: token, User: user.DTO()}, nil
}

// Verify resolves an access token to a user id.
func (s *Service) Verify(token string) (string, error) {
	return s.tokens.Verify(token)
}
