package inquiries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	byID map[string]Inquiry
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]Inquiry)}
}

func (f *fakeRepository) Create(ctx context.Context, item Inquiry) error {
	f.byID[item.ID] = item
	return nil
}

func (f *fakeRepository) Get(ctx context.Context, id string) (Inquiry, error) {
	item, ok := f.byID[id]
	if !ok {
		return Inquiry{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) List(ctx context.Context) ([]Inquiry, error) {
	out := make([]Inquiry, 0, len(f.byID))
	for _, item := range f.byID {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (Inquiry, error) {
	item, ok := f.byID[id]
	if !ok {
		return Inquiry{}, mongo.ErrNoDocuments
	}
	if v, ok := set["firstname"].(string); ok {
		item.FirstName = v
	}
	if v, ok := set["lastname"].(string); ok {
		item.LastName = v
	}
	if v, ok := set["email"].(string); ok {
		item.Email = v
	}
	if v, ok := set["phone"].(string); ok {
		item.Phone = v
	}
	if v, ok := set["message"].(string); ok {
		item.Message = v
	}
	f.byID[id] = item
	return item, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func validRequest() UpsertRequest {
	return UpsertRequest{
		FirstName: "Riley",
		LastName:  "Banks",
		Email:     "riley@example.com",
		Phone:     "+971500000001",
		Message:   "Interested in the Palm Jumeirah villa.",
	}
}

func TestInquiryRoundTrip(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Riley", created.FirstName)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Message, got.Message)

	req := validRequest()
	req.Message = "Is the villa still available?"
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	require.Equal(t, "Is the villa still available?", updated.Message)

	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Is the villa still available?", got.Message)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInquiryCreateTrimsFields(t *testing.T) {
	svc := NewService(newFakeRepository())

	req := validRequest()
	req.FirstName = "  Riley  "
	req.Message = "  Hello  "

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Riley", created.FirstName)
	require.Equal(t, "Hello", created.Message)
}

func TestInquiryUpdateMissing(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Update(context.Background(), "64b000000000000000000000", validRequest())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestInquiryDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepository())

	err := svc.Delete(context.Background(), "64b000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}
