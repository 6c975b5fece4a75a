package sections

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBannerRepository struct {
	docs map[string]Banner
}

func newFakeBannerRepository() *fakeBannerRepository {
	return &fakeBannerRepository{docs: make(map[string]Banner)}
}

func (f *fakeBannerRepository) GetByKey(ctx context.Context, key string) (Banner, error) {
	item, ok := f.docs[key]
	if !ok {
		return Banner{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeBannerRepository) apply(item Banner, set bson.M) Banner {
	if v, ok := set["heading"].(string); ok {
		item.Heading = v
	}
	if v, ok := set["subheading"].(string); ok {
		item.Subheading = v
	}
	if v, ok := set["image"].(string); ok {
		item.Image = v
	}
	return item
}

func (f *fakeBannerRepository) Upsert(ctx context.Context, key string, set, setOnInsert bson.M) (Banner, error) {
	item, ok := f.docs[key]
	if !ok {
		item = Banner{ID: key}
	}
	item = f.apply(item, set)
	f.docs[key] = item
	return item, nil
}

func (f *fakeBannerRepository) Update(ctx context.Context, key string, set bson.M) (Banner, error) {
	item, ok := f.docs[key]
	if !ok {
		return Banner{}, mongo.ErrNoDocuments
	}
	item = f.apply(item, set)
	f.docs[key] = item
	return item, nil
}

func (f *fakeBannerRepository) Delete(ctx context.Context, key string) (bool, error) {
	if _, ok := f.docs[key]; !ok {
		return false, nil
	}
	delete(f.docs, key)
	return true, nil
}

func TestBannerSaveCreatesSingleton(t *testing.T) {
	repo := newFakeBannerRepository()
	svc := NewBannerService(repo, KeyHero)

	item, err := svc.Save(context.Background(), BannerUpsertRequest{Heading: "Welcome", Subheading: "Home"}, "/uploads/hero.jpg")
	require.NoError(t, err)
	require.Equal(t, KeyHero, item.ID)
	require.Equal(t, "/uploads/hero.jpg", item.Image)
	require.Len(t, repo.docs, 1)
}

func TestBannerSaveOverwritesInPlace(t *testing.T) {
	repo := newFakeBannerRepository()
	svc := NewBannerService(repo, KeyHero)

	_, err := svc.Save(context.Background(), BannerUpsertRequest{Heading: "First", Subheading: "One"}, "/uploads/a.jpg")
	require.NoError(t, err)
	item, err := svc.Save(context.Background(), BannerUpsertRequest{Heading: "Second", Subheading: "Two"}, "/uploads/b.jpg")
	require.NoError(t, err)

	require.Equal(t, "Second", item.Heading)
	require.Equal(t, "/uploads/b.jpg", item.Image)
	require.Len(t, repo.docs, 1)
}

func TestBannerCurrentAbsent(t *testing.T) {
	svc := NewBannerService(newFakeBannerRepository(), KeyHero)

	_, found, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.False(t, found)
}

func TestBannerListZeroOrOne(t *testing.T) {
	repo := newFakeBannerRepository()
	svc := NewBannerService(repo, KeyHero)

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)

	_, err = svc.Save(context.Background(), BannerUpsertRequest{Heading: "Welcome", Subheading: "Home"}, "/uploads/a.jpg")
	require.NoError(t, err)

	items, err = svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestBannerGetRejectsForeignID(t *testing.T) {
	repo := newFakeBannerRepository()
	svc := NewBannerService(repo, KeyHero)

	_, err := svc.Save(context.Background(), BannerUpsertRequest{Heading: "Welcome", Subheading: "Home"}, "/uploads/a.jpg")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "something-else")
	require.ErrorIs(t, err, ErrNotFound)

	item, err := svc.Get(context.Background(), KeyHero)
	require.NoError(t, err)
	require.Equal(t, KeyHero, item.ID)
}

func TestBannerUpdateRequiresExistingSection(t *testing.T) {
	svc := NewBannerService(newFakeBannerRepository(), KeyMagazine)

	_, err := svc.Update(context.Background(), KeyMagazine, BannerUpsertRequest{Heading: "H", Subheading: "S"}, "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBannerUpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	repo := newFakeBannerRepository()
	svc := NewBannerService(repo, KeyHero)

	_, err := svc.Save(context.Background(), BannerUpsertRequest{Heading: "First", Subheading: "One"}, "/uploads/a.jpg")
	require.NoError(t, err)

	item, err := svc.Update(context.Background(), KeyHero, BannerUpsertRequest{Heading: "Second", Subheading: "Two"}, "")
	require.NoError(t, err)
	require.Equal(t, "Second", item.Heading)
	require.Equal(t, "/uploads/a.jpg", item.Image)
}

func TestBannerDelete(t *testing.T) {
	repo := newFakeBannerRepository()
	svc := NewBannerService(repo, KeyHero)

	require.ErrorIs(t, svc.Delete(context.Background(), KeyHero), ErrNotFound)

	_, err := svc.Save(context.Background(), BannerUpsertRequest{Heading: "H", Subheading: "S"}, "/uploads/a.jpg")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), KeyHero))
	require.Empty(t, repo.docs)
}

type fakePromoRepository struct {
	docs map[string]Promo
}

func newFakePromoRepository() *fakePromoRepository {
	return &fakePromoRepository{docs: make(map[string]Promo)}
}

func (f *fakePromoRepository) GetByKey(ctx context.Context, key string) (Promo, error) {
	item, ok := f.docs[key]
	if !ok {
		return Promo{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakePromoRepository) apply(item Promo, set bson.M) Promo {
	if v, ok := set["description"].(string); ok {
		item.Description = v
	}
	if v, ok := set["btntext"].(string); ok {
		item.ButtonText = v
	}
	return item
}

func (f *fakePromoRepository) Upsert(ctx context.Context, key string, set, setOnInsert bson.M) (Promo, error) {
	item, ok := f.docs[key]
	if !ok {
		item = Promo{ID: key}
	}
	item = f.apply(item, set)
	f.docs[key] = item
	return item, nil
}

func (f *fakePromoRepository) Update(ctx context.Context, key string, set bson.M) (Promo, error) {
	item, ok := f.docs[key]
	if !ok {
		return Promo{}, mongo.ErrNoDocuments
	}
	item = f.apply(item, set)
	f.docs[key] = item
	return item, nil
}

func (f *fakePromoRepository) Delete(ctx context.Context, key string) (bool, error) {
	if _, ok := f.docs[key]; !ok {
		return false, nil
	}
	delete(f.docs, key)
	return true, nil
}

func TestPromoKeysAreIsolated(t *testing.T) {
	repo := newFakePromoRepository()
	mansion := NewPromoService(repo, KeyMansion)
	penthouse := NewPromoService(repo, KeyPenthouse)

	_, err := mansion.Save(context.Background(), PromoUpsertRequest{Description: "Mansions", ButtonText: "View"})
	require.NoError(t, err)

	_, found, err := penthouse.Current(context.Background())
	require.NoError(t, err)
	require.False(t, found)

	item, found, err := mansion.Current(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, KeyMansion, item.ID)
}

func TestPromoUpdateTrimsFields(t *testing.T) {
	repo := newFakePromoRepository()
	svc := NewPromoService(repo, KeyCollection)

	_, err := svc.Save(context.Background(), PromoUpsertRequest{Description: "Old", ButtonText: "Old"})
	require.NoError(t, err)

	item, err := svc.Update(context.Background(), KeyCollection, PromoUpsertRequest{Description: "  New copy  ", ButtonText: " Browse "})
	require.NoError(t, err)
	require.Equal(t, "New copy", item.Description)
	require.Equal(t, "Browse", item.ButtonText)
}
