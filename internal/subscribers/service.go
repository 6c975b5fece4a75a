package subscribers

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("subscriber not found")

const defaultCategory = "Newsletter"

type NewsletterService struct {
	repo NewsletterRepository
}

func NewNewsletterService(repo NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Create(ctx context.Context, req NewsletterRequest) (NewsletterSignup, error) {
	now := time.Now()
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = defaultCategory
	}
	item := NewsletterSignup{
		ID:        primitive.NewObjectID().Hex(),
		Email:     strings.TrimSpace(req.Email),
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return NewsletterSignup{}, err
	}
	return item, nil
}

func (s *NewsletterService) Get(ctx context.Context, id string) (NewsletterSignup, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewsletterSignup{}, ErrNotFound
		}
		return NewsletterSignup{}, err
	}
	return item, nil
}

func (s *NewsletterService) List(ctx context.Context) ([]NewsletterSignup, error) {
	return s.repo.List(ctx)
}

func (s *NewsletterService) Update(ctx context.Context, id string, req NewsletterRequest) (NewsletterSignup, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = defaultCategory
	}
	set := bson.M{
		"email":      strings.TrimSpace(req.Email),
		"category":   category,
		"updated_at": time.Now(),
	}
	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewsletterSignup{}, ErrNotFound
		}
		return NewsletterSignup{}, err
	}
	return updated, nil
}

func (s *NewsletterService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

type MagazineEmailService struct {
	repo MagazineEmailRepository
}

func NewMagazineEmailService(repo MagazineEmailRepository) *MagazineEmailService {
	return &MagazineEmailService{repo: repo}
}

func (s *MagazineEmailService) Create(ctx context.Context, req MagazineEmailRequest) (MagazineEmail, error) {
	now := time.Now()
	item := MagazineEmail{
		ID:        primitive.NewObjectID().Hex(),
		Email:     strings.TrimSpace(req.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return MagazineEmail{}, err
	}
	return item, nil
}

func (s *MagazineEmailService) Get(ctx context.Context, id string) (MagazineEmail, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MagazineEmail{}, ErrNotFound
		}
		return MagazineEmail{}, err
	}
	return item, nil
}

func (s *MagazineEmailService) List(ctx context.Context) ([]MagazineEmail, error) {
	return s.repo.List(ctx)
}

func (s *MagazineEmailService) Update(ctx context.Context, id string, req MagazineEmailRequest) (MagazineEmail, error) {
	set := bson.M{
		"email":      strings.TrimSpace(req.Email),
		"updated_at": time.Now(),
	}
	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return MagazineEmail{}, ErrNotFound
		}
		return MagazineEmail{}, err
	}
	return updated, nil
}

func (s *MagazineEmailService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
