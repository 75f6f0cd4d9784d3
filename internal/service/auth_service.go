package service

import (
	"context"
	"errors"

	"todo_webapp/internal/domain"
	"todo_webapp/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadRegistration    = errors.New("username and password must not be empty")
)

// bcryptCost matches the hashes already in the users table.
const bcryptCost = 10

type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register stores a new user with a salted one-way hash of the password.
// Returns repository.ErrUsernameTaken when the name is already in use.
func (s *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, ErrBadRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, err
	}

	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return 0, err
	}
	return u.ID, nil
}

// Login verifies the password and issues a signed token. Unknown usernames
// and wrong passwords fail identically so the endpoint cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return GenerateJWT(u.ID, u.Username)
}
