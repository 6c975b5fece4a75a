package inquiries

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("inquiry not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (Inquiry, error) {
	now := time.Now()
	item := Inquiry{
		ID:        primitive.NewObjectID().Hex(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return Inquiry{}, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Inquiry, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, ErrNotFound
		}
		return Inquiry{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Inquiry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (Inquiry, error) {
	set := bson.M{
		"firstname":  strings.TrimSpace(req.FirstName),
		"lastname":   strings.TrimSpace(req.LastName),
		"email":      strings.TrimSpace(req.Email),
		"phone":      strings.TrimSpace(req.Phone),
		"message":    strings.TrimSpace(req.Message),
		"updated_at": time.Now(),
	}
	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Inquiry{}, ErrNotFound
		}
		return Inquiry{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
