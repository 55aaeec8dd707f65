package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xxxsen/todolist/internal/model"
	appErr "github.com/xxxsen/todolist/internal/pkg/errors"
	"github.com/xxxsen/todolist/internal/pkg/jwt"
	"github.com/xxxsen/todolist/internal/pkg/password"
	"github.com/xxxsen/todolist/internal/pkg/timeutil"
	"github.com/xxxsen/todolist/internal/repo"
)

type AuthService struct {
	users     *repo.UserRepo
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewAuthService(users *repo.UserRepo, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(ctx context.Context, username, email, plainPassword string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || plainPassword == "" {
		return nil, appErr.ErrInvalid
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	now := timeutil.NowUnix()
	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Ctime:        now,
		Mtime:        now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves the user by exact email match and mints a signed token
// whose subject is the user id. A missing user and a bad password are
// reported as distinct failures, matching the upstream API.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, appErr.ErrNotFound) {
			return "", appErr.ErrUserNotFound
		}
		return "", err
	}
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", appErr.ErrInvalidCredentials
	}
	return jwt.GenerateToken(user.ID, s.jwtSecret, s.jwtTTL)
}
