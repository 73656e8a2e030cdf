package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inotebook/model"
	"inotebook/repository"
	"inotebook/services"
	"inotebook/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	UsersRepo UsersRepository
	Tokens    TokenIssuer
	// Revoker is nil when revocation is disabled.
	Revoker TokenRevoker
}

func NewUserService(repo UsersRepository, tokens TokenIssuer, revoker TokenRevoker) *UserService {
	return &UserService{
		UsersRepo: repo,
		Tokens:    tokens,
		Revoker:   revoker,
	}
}

// Register creates the account and returns a token for it. Input is
// expected to be validated already.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	_, err := s.UsersRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		utils.TrackAuthAttempt("failure", "register")
		return "", ErrUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("lookup email: %w", err)
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := s.UsersRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.TrackAuthAttempt("failure", "register")
			return "", ErrUserExists
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.Tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	utils.TrackAuthAttempt("success", "register")
	return token, nil
}

// Login returns a token for valid credentials. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.TrackAuthAttempt("failure", "login")
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	match, err := services.ComparePassword(user.Password, password)
	if err != nil {
		return "", err
	}
	if !match {
		utils.TrackAuthAttempt("failure", "login")
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	utils.TrackAuthAttempt("success", "login")
	return token, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidIdentity
	}

	user, err := s.UsersRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// Logout revokes token. expiresAt is zero for tokens without exp.
func (s *UserService) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	if s.Revoker == nil {
		return ErrRevocationDisabled
	}
	if err := s.Revoker.Revoke(ctx, token, expiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
