package subscribers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNewsletterRepository struct {
	byID map[string]NewsletterSignup
}

func newFakeNewsletterRepository() *fakeNewsletterRepository {
	return &fakeNewsletterRepository{byID: make(map[string]NewsletterSignup)}
}

func (f *fakeNewsletterRepository) Create(ctx context.Context, item NewsletterSignup) error {
	f.byID[item.ID] = item
	return nil
}

func (f *fakeNewsletterRepository) Get(ctx context.Context, id string) (NewsletterSignup, error) {
	item, ok := f.byID[id]
	if !ok {
		return NewsletterSignup{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeNewsletterRepository) List(ctx context.Context) ([]NewsletterSignup, error) {
	out := make([]NewsletterSignup, 0, len(f.byID))
	for _, item := range f.byID {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeNewsletterRepository) Update(ctx context.Context, id string, set bson.M) (NewsletterSignup, error) {
	item, ok := f.byID[id]
	if !ok {
		return NewsletterSignup{}, mongo.ErrNoDocuments
	}
	if v, ok := set["email"].(string); ok {
		item.Email = v
	}
	if v, ok := set["category"].(string); ok {
		item.Category = v
	}
	f.byID[id] = item
	return item, nil
}

func (f *fakeNewsletterRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

type fakeMagazineEmailRepository struct {
	byID map[string]MagazineEmail
}

func newFakeMagazineEmailRepository() *fakeMagazineEmailRepository {
	return &fakeMagazineEmailRepository{byID: make(map[string]MagazineEmail)}
}

func (f *fakeMagazineEmailRepository) Create(ctx context.Context, item MagazineEmail) error {
	f.byID[item.ID] = item
	return nil
}

func (f *fakeMagazineEmailRepository) Get(ctx context.Context, id string) (MagazineEmail, error) {
	item, ok := f.byID[id]
	if !ok {
		return MagazineEmail{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeMagazineEmailRepository) List(ctx context.Context) ([]MagazineEmail, error) {
	out := make([]MagazineEmail, 0, len(f.byID))
	for _, item := range f.byID {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeMagazineEmailRepository) Update(ctx context.Context, id string, set bson.M) (MagazineEmail, error) {
	item, ok := f.byID[id]
	if !ok {
		return MagazineEmail{}, mongo.ErrNoDocuments
	}
	if v, ok := set["email"].(string); ok {
		item.Email = v
	}
	f.byID[id] = item
	return item, nil
}

func (f *fakeMagazineEmailRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func TestNewsletterRoundTrip(t *testing.T) {
	svc := NewNewsletterService(newFakeNewsletterRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, NewsletterRequest{Email: " reader@example.com ", Category: "Weekly"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "reader@example.com", created.Email)
	require.Equal(t, "Weekly", created.Category)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, got.Email)

	updated, err := svc.Update(ctx, created.ID, NewsletterRequest{Email: "other@example.com", Category: "Monthly"})
	require.NoError(t, err)
	require.Equal(t, "other@example.com", updated.Email)
	require.Equal(t, "Monthly", updated.Category)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "other@example.com", got.Email)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsletterDefaultCategory(t *testing.T) {
	svc := NewNewsletterService(newFakeNewsletterRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, NewsletterRequest{Email: "reader@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Newsletter", created.Category)

	// An update that clears the category falls back to the default too.
	updated, err := svc.Update(ctx, created.ID, NewsletterRequest{Email: "reader@example.com", Category: "  "})
	require.NoError(t, err)
	require.Equal(t, "Newsletter", updated.Category)
}

func TestNewsletterUpdateMissing(t *testing.T) {
	svc := NewNewsletterService(newFakeNewsletterRepository())

	_, err := svc.Update(context.Background(), "64b000000000000000000000", NewsletterRequest{Email: "x@example.com"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewsletterDeleteMissing(t *testing.T) {
	svc := NewNewsletterService(newFakeNewsletterRepository())

	err := svc.Delete(context.Background(), "64b000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMagazineEmailRoundTrip(t *testing.T) {
	svc := NewMagazineEmailService(newFakeMagazineEmailRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, MagazineEmailRequest{Email: " glossy@example.com "})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "glossy@example.com", created.Email)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, got.Email)

	updated, err := svc.Update(ctx, created.ID, MagazineEmailRequest{Email: "matte@example.com"})
	require.NoError(t, err)
	require.Equal(t, "matte@example.com", updated.Email)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "matte@example.com", got.Email)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMagazineEmailDeleteMissing(t *testing.T) {
	svc := NewMagazineEmailService(newFakeMagazineEmailRepository())

	err := svc.Delete(context.Background(), "64b000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}
