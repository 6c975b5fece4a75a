package featured

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mansionmarket-backend/internal/properties"

	"go.mongodb.org/mongo-driver/mongo"
)

// MaxReferences is the product cap on featured listings, identical for all
// four families. The frontend enforces the same limit in form state, but this
// check is the source of truth.
const MaxReferences = 4

var (
	ErrEmptyReferences   = errors.New("at least one reference is required")
	ErrTooManyReferences = errors.New("too many references")
)

type ReferenceNotFoundError struct {
	Reference string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference number %s not found", e.Reference)
}

// PropertyFinder is the slice of the property repository the resolver needs:
// a single set-membership fetch over caller-assigned references.
type PropertyFinder interface {
	FindByReferences(ctx context.Context, references []string) ([]properties.PropertyDetail, error)
}

type Service struct {
	repo   Repository
	finder PropertyFinder
}

func NewService(repo Repository, finder PropertyFinder) *Service {
	return &Service{
		repo:   repo,
		finder: finder,
	}
}

// Set validates and stores the family's reference list: entries are trimmed,
// empties dropped, duplicates removed keeping first-occurrence order, the
// result capped at MaxReferences, and every surviving reference must resolve
// to an existing property. Nothing is written if any check fails.
//
// The existence check and the write are separate store calls, so a property
// deleted in between leaves a dangling reference behind; Get tolerates that.
func (s *Service) Set(ctx context.Context, family Family, rawReferences []string) (Set, error) {
	references := normalizeReferences(rawReferences)
	if len(references) == 0 {
		return Set{}, ErrEmptyReferences
	}
	if len(references) > MaxReferences {
		return Set{}, ErrTooManyReferences
	}

	found, err := s.finder.FindByReferences(ctx, references)
	if err != nil {
		return Set{}, err
	}
	exists := make(map[string]bool, len(found))
	for _, item := range found {
		exists[item.Reference] = true
	}
	for _, ref := range references {
		if !exists[ref] {
			return Set{}, &ReferenceNotFoundError{Reference: ref}
		}
	}

	return s.repo.UpsertReferences(ctx, family, references)
}

// Get expands the family's stored references into full property documents in
// stored order. The membership query does not guarantee order, so the output
// is re-projected through the stored list. References that no longer resolve
// are dropped from the output but stay in the stored document until the next
// Set overwrites it.
func (s *Service) Get(ctx context.Context, family Family) ([]properties.PropertyDetail, error) {
	set, err := s.repo.GetByFamily(ctx, family)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return []properties.PropertyDetail{}, nil
		}
		return nil, err
	}
	if len(set.References) == 0 {
		return []properties.PropertyDetail{}, nil
	}

	found, err := s.finder.FindByReferences(ctx, set.References)
	if err != nil {
		return nil, err
	}

	byReference := make(map[string]properties.PropertyDetail, len(found))
	for _, item := range found {
		byReference[item.Reference] = item
	}

	ordered := make([]properties.PropertyDetail, 0, len(set.References))
	for _, ref := range set.References {
		if item, ok := byReference[ref]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered, nil
}

func normalizeReferences(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, ref := range raw {
		ref = strings.TrimSpace(ref)
		if ref == "" || seen[ref] {
			continue
		}
		seen[ref] = true
		out = append(out, ref)
	}
	return out
}
