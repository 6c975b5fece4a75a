package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"mansionmarket-backend/internal/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Signup creates an admin or superadmin account. Emails are stored lowercase
// so the unique index catches case-variant duplicates.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (User, error) {
	if req.Password != req.ConfirmPassword {
		return User{}, ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return User{}, err
	}

	now := time.Now()
	item := User{
		ID:           primitive.NewObjectID().Hex(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, err
	}
	return item, nil
}

// Login verifies credentials and returns the stored user. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	item, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := auth.ComparePassword(item.PasswordHash, req.Password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
