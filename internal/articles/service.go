package articles

import (
	"context"
	"errors"
	"strings"
	"time"

	"mansionmarket-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("article not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts the article with a slug derived from its title. A slug
// collision gets one retry with the id appended, which is unique by
// construction.
func (s *Service) Create(ctx context.Context, req UpsertRequest, mainImage string) (Article, error) {
	now := time.Now()
	item := Article{
		ID:        primitive.NewObjectID().Hex(),
		Category:  strings.TrimSpace(req.Category),
		Author:    strings.TrimSpace(req.Author),
		Title:     strings.TrimSpace(req.Title),
		Subtitle:  strings.TrimSpace(req.Subtitle),
		Time:      strings.TrimSpace(req.Time),
		MainImage: mainImage,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	item.Slug = utils.Slugify(item.Title)

	err := s.repo.Create(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		item.Slug = item.Slug + "-" + item.ID
		err = s.repo.Create(ctx, item)
	}
	if err != nil {
		return Article{}, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Article, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	return item, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Article, error) {
	item, err := s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]Article, error) {
	return s.repo.List(ctx)
}

// Update rewrites the article's fields. The slug is deliberately left alone.
func (s *Service) Update(ctx context.Context, id string, req UpsertRequest, mainImage string) (Article, error) {
	set := bson.M{
		"category":   strings.TrimSpace(req.Category),
		"author":     strings.TrimSpace(req.Author),
		"title":      strings.TrimSpace(req.Title),
		"subtitle":   strings.TrimSpace(req.Subtitle),
		"time":       strings.TrimSpace(req.Time),
		"content":    req.Content,
		"updated_at": time.Now(),
	}
	if mainImage != "" {
		set["mainImage"] = mainImage
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Article{}, ErrNotFound
		}
		return Article{}, err
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
