package sections

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("section not found")

// BannerService manages the keyed singleton for one banner section. Each
// section has exactly one document whose id is the section key, upserted in
// place instead of accumulating a history of inserts.
type BannerService struct {
	repo BannerRepository
	key  string
}

func NewBannerService(repo BannerRepository, key string) *BannerService {
	return &BannerService{
		repo: repo,
		key:  key,
	}
}

func (s *BannerService) Key() string {
	return s.key
}

// Save creates or overwrites the section's singleton document.
func (s *BannerService) Save(ctx context.Context, req BannerUpsertRequest, imagePath string) (Banner, error) {
	now := time.Now()
	set := bson.M{
		"heading":    strings.TrimSpace(req.Heading),
		"subheading": strings.TrimSpace(req.Subheading),
		"updated_at": now,
	}
	if imagePath != "" {
		set["image"] = imagePath
	}
	return s.repo.Upsert(ctx, s.key, set, bson.M{"created_at": now})
}

// Current returns the singleton if it exists.
func (s *BannerService) Current(ctx context.Context) (Banner, bool, error) {
	item, err := s.repo.GetByKey(ctx, s.key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Banner{}, false, nil
		}
		return Banner{}, false, err
	}
	return item, true, nil
}

func (s *BannerService) List(ctx context.Context) ([]Banner, error) {
	items := make([]Banner, 0, 1)
	item, found, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		items = append(items, item)
	}
	return items, nil
}

func (s *BannerService) Get(ctx context.Context, id string) (Banner, error) {
	if strings.TrimSpace(id) != s.key {
		return Banner{}, ErrNotFound
	}
	item, err := s.repo.GetByKey(ctx, s.key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Banner{}, ErrNotFound
		}
		return Banner{}, err
	}
	return item, nil
}

// Update modifies the existing singleton; unlike Save it fails when the
// section has never been created. An empty imagePath keeps the stored image.
func (s *BannerService) Update(ctx context.Context, id string, req BannerUpsertRequest, imagePath string) (Banner, error) {
	if strings.TrimSpace(id) != s.key {
		return Banner{}, ErrNotFound
	}
	set := bson.M{
		"heading":    strings.TrimSpace(req.Heading),
		"subheading": strings.TrimSpace(req.Subheading),
		"updated_at": time.Now(),
	}
	if imagePath != "" {
		set["image"] = imagePath
	}
	updated, err := s.repo.Update(ctx, s.key, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Banner{}, ErrNotFound
		}
		return Banner{}, err
	}
	return updated, nil
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) != s.key {
		return ErrNotFound
	}
	deleted, err := s.repo.Delete(ctx, s.key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// PromoService mirrors BannerService for the text-and-button sections.
type PromoService struct {
	repo PromoRepository
	key  string
}

func NewPromoService(repo PromoRepository, key string) *PromoService {
	return &PromoService{
		repo: repo,
		key:  key,
	}
}

func (s *PromoService) Key() string {
	return s.key
}

func (s *PromoService) Save(ctx context.Context, req PromoUpsertRequest) (Promo, error) {
	now := time.Now()
	set := bson.M{
		"description": strings.TrimSpace(req.Description),
		"btntext":     strings.TrimSpace(req.ButtonText),
		"updated_at":  now,
	}
	return s.repo.Upsert(ctx, s.key, set, bson.M{"created_at": now})
}

func (s *PromoService) Current(ctx context.Context) (Promo, bool, error) {
	item, err := s.repo.GetByKey(ctx, s.key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Promo{}, false, nil
		}
		return Promo{}, false, err
	}
	return item, true, nil
}

func (s *PromoService) List(ctx context.Context) ([]Promo, error) {
	items := make([]Promo, 0, 1)
	item, found, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		items = append(items, item)
	}
	return items, nil
}

func (s *PromoService) Get(ctx context.Context, id string) (Promo, error) {
	if strings.TrimSpace(id) != s.key {
		return Promo{}, ErrNotFound
	}
	item, err := s.repo.GetByKey(ctx, s.key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Promo{}, ErrNotFound
		}
		return Promo{}, err
	}
	return item, nil
}

func (s *PromoService) Update(ctx context.Context, id string, req PromoUpsertRequest) (Promo, error) {
	if strings.TrimSpace(id) != s.key {
		return Promo{}, ErrNotFound
	}
	set := bson.M{
		"description": strings.TrimSpace(req.Description),
		"btntext":     strings.TrimSpace(req.ButtonText),
		"updated_at":  time.Now(),
	}
	updated, err := s.repo.Update(ctx, s.key, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Promo{}, ErrNotFound
		}
		return Promo{}, err
	}
	return updated, nil
}

func (s *PromoService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) != s.key {
		return ErrNotFound
	}
	deleted, err := s.repo.Delete(ctx, s.key)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
