// Package services contains server-side business logic. This file implements
// UserService, which validates registrations, verifies credentials at login,
// and issues session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/server/auth"
	"github.com/dmitrijs2005/credkeeper/internal/server/config"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// emailPattern is a shallow syntactic check: something, "@", something,
// ".", something, with no whitespace or second "@". Deliberately loose,
// not an RFC validator.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// bcryptCost is the bcrypt work factor used for new password hashes.
const bcryptCost = 10

// RegisterRequest carries the fields accepted at registration. Only Email
// and Password are mandatory.
type RegisterRequest struct {
	Email             string
	Password          string
	PhoneNumber       string
	Address           string
	AdditionalAddress string
	City              string
	ZipCode           string
}

// UserService provides the credential/session lifecycle:
// - Register: validate input, store a new user, mint a session token
// - Login: verify credentials and mint a session token
type UserService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService from the user store and server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register validates the request, checks for an existing account, stores the
// user with a bcrypt password hash and returns a session token bound to the
// new identifier and email.
//
// The pre-insert existence check is best effort under concurrency; the
// store's unique constraint on email closes the race, and its violation
// surfaces as common.ErrorAlreadyExists just like the check itself.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if err := validateRegistration(req); err != nil {
		return "", err
	}

	_, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return "", common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      string(hash),
		PhoneNumber:       nullString(req.PhoneNumber),
		Address:           nullString(req.Address),
		AdditionalAddress: nullString(req.AdditionalAddress),
		City:              nullString(req.City),
		ZipCode:           nullString(req.ZipCode),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", common.ErrorInternal
	}

	return s.generateToken(created)
}

// Login verifies the supplied credentials and returns a session token on
// success. A missing user, a lookup failure and a wrong password all yield
// the same common.ErrorIncorrectCredentials so the cause cannot be told
// apart from the outside.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorEmailPasswordRequired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", common.ErrorIncorrectCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorIncorrectCredentials
	}

	return s.generateToken(user)
}

func (s *UserService) generateToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

func validateRegistration(req RegisterRequest) error {
	if req.Email == "" || req.Password == "" {
		return common.ErrorEmailPasswordRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return common.ErrorInvalidEmailFormat
	}
	if len(req.Password) < minPasswordLength {
		return common.ErrorInvalidPasswordFormat
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
