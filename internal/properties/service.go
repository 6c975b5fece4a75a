package properties

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound           = errors.New("property not found")
	ErrDuplicateReference = errors.New("property with this reference already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req UpsertRequest, files FileSet) (PropertyDetail, error) {
	now := time.Now()
	item := PropertyDetail{
		ID:              primitive.NewObjectID().Hex(),
		Reference:       strings.TrimSpace(req.Reference),
		PropertyType:    strings.TrimSpace(req.PropertyType),
		Size:            strings.TrimSpace(req.Size),
		Bedrooms:        strings.TrimSpace(req.Bedrooms),
		Bathrooms:       strings.TrimSpace(req.Bathrooms),
		FurnishingType:  strings.TrimSpace(req.FurnishingType),
		BuiltUpArea:     strings.TrimSpace(req.BuiltUpArea),
		ProjectStatus:   strings.TrimSpace(req.ProjectStatus),
		Community:       strings.TrimSpace(req.Community),
		SubCommunity:    strings.TrimSpace(req.SubCommunity),
		Country:         strings.TrimSpace(req.Country),
		Price:           strings.TrimSpace(req.Price),
		Title:           strings.TrimSpace(req.Title),
		Subtitle:        strings.TrimSpace(req.Subtitle),
		Description:     strings.TrimSpace(req.Description),
		Amenities:       strings.TrimSpace(req.Amenities),
		Image:           files.Image,
		Video:           files.Video,
		PropertyAddress: strings.TrimSpace(req.PropertyAddress),
		UnitNo:          strings.TrimSpace(req.UnitNo),
		Tag:             strings.TrimSpace(req.Tag),
		Status:          strings.TrimSpace(req.Status),
		AgentName:       strings.TrimSpace(req.AgentName),
		Designation:     strings.TrimSpace(req.Designation),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		WhatsAppNo:      strings.TrimSpace(req.WhatsAppNo),
		CallNo:          strings.TrimSpace(req.CallNo),
		AgentImage:      files.AgentImage,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return PropertyDetail{}, ErrDuplicateReference
		}
		return PropertyDetail{}, err
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (PropertyDetail, error) {
	item, err := s.repo.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PropertyDetail{}, ErrNotFound
		}
		return PropertyDetail{}, err
	}
	return item, nil
}

func (s *Service) GetByReference(ctx context.Context, reference string) (PropertyDetail, error) {
	item, err := s.repo.GetByReference(ctx, strings.TrimSpace(reference))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PropertyDetail{}, ErrNotFound
		}
		return PropertyDetail{}, err
	}
	return item, nil
}

func (s *Service) List(ctx context.Context) ([]PropertyDetail, error) {
	return s.repo.List(ctx)
}

// Update re-validates the full text payload and merges file paths only when a
// new upload accompanied the request.
func (s *Service) Update(ctx context.Context, id string, req UpsertRequest, files FileSet) (PropertyDetail, error) {
	id = strings.TrimSpace(id)
	reference := strings.TrimSpace(req.Reference)

	inUse, err := s.repo.ReferenceInUse(ctx, reference, id)
	if err != nil {
		return PropertyDetail{}, err
	}
	if inUse {
		return PropertyDetail{}, ErrDuplicateReference
	}

	set := bson.M{
		"reference":       reference,
		"propertytype":    strings.TrimSpace(req.PropertyType),
		"size":            strings.TrimSpace(req.Size),
		"bedrooms":        strings.TrimSpace(req.Bedrooms),
		"bathrooms":       strings.TrimSpace(req.Bathrooms),
		"furnishingtype":  strings.TrimSpace(req.FurnishingType),
		"builtuparea":     strings.TrimSpace(req.BuiltUpArea),
		"projectstatus":   strings.TrimSpace(req.ProjectStatus),
		"community":       strings.TrimSpace(req.Community),
		"subcommunity":    strings.TrimSpace(req.SubCommunity),
		"country":         strings.TrimSpace(req.Country),
		"price":           strings.TrimSpace(req.Price),
		"title":           strings.TrimSpace(req.Title),
		"subtitle":        strings.TrimSpace(req.Subtitle),
		"description":     strings.TrimSpace(req.Description),
		"amenities":       strings.TrimSpace(req.Amenities),
		"propertyaddress": strings.TrimSpace(req.PropertyAddress),
		"unitno":          strings.TrimSpace(req.UnitNo),
		"tag":             strings.TrimSpace(req.Tag),
		"status":          strings.TrimSpace(req.Status),
		"agentname":       strings.TrimSpace(req.AgentName),
		"designation":     strings.TrimSpace(req.Designation),
		"email":           strings.TrimSpace(req.Email),
		"phone":           strings.TrimSpace(req.Phone),
		"whatsaapno":      strings.TrimSpace(req.WhatsAppNo),
		"callno":          strings.TrimSpace(req.CallNo),
		"updated_at":      time.Now(),
	}
	if files.Image != "" {
		set["image"] = files.Image
	}
	if files.Video != "" {
		set["video"] = files.Video
	}
	if files.AgentImage != "" {
		set["agentimage"] = files.AgentImage
	}

	updated, err := s.repo.Update(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PropertyDetail{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return PropertyDetail{}, ErrDuplicateReference
		}
		return PropertyDetail{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
