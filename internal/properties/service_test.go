package properties

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	byID        map[string]PropertyDetail
	byReference map[string]string
	lastSet     bson.M
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		byID:        make(map[string]PropertyDetail),
		byReference: make(map[string]string),
	}
}

func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}
}

func (f *fakeRepository) Create(ctx context.Context, item PropertyDetail) error {
	if _, exists := f.byReference[item.Reference]; exists {
		return duplicateKeyError()
	}
	f.byID[item.ID] = item
	f.byReference[item.Reference] = item.ID
	return nil
}

func (f *fakeRepository) Get(ctx context.Context, id string) (PropertyDetail, error) {
	item, ok := f.byID[id]
	if !ok {
		return PropertyDetail{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) GetByReference(ctx context.Context, reference string) (PropertyDetail, error) {
	id, ok := f.byReference[reference]
	if !ok {
		return PropertyDetail{}, mongo.ErrNoDocuments
	}
	return f.byID[id], nil
}

func (f *fakeRepository) FindByReferences(ctx context.Context, references []string) ([]PropertyDetail, error) {
	out := make([]PropertyDetail, 0, len(references))
	for _, ref := range references {
		if id, ok := f.byReference[ref]; ok {
			out = append(out, f.byID[id])
		}
	}
	return out, nil
}

func (f *fakeRepository) List(ctx context.Context) ([]PropertyDetail, error) {
	out := make([]PropertyDetail, 0, len(f.byID))
	for _, item := range f.byID {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (PropertyDetail, error) {
	item, ok := f.byID[id]
	if !ok {
		return PropertyDetail{}, mongo.ErrNoDocuments
	}
	f.lastSet = set
	if ref, ok := set["reference"].(string); ok && ref != item.Reference {
		delete(f.byReference, item.Reference)
		item.Reference = ref
		f.byReference[ref] = id
	}
	if image, ok := set["image"].(string); ok {
		item.Image = image
	}
	if video, ok := set["video"].(string); ok {
		item.Video = video
	}
	if agentImage, ok := set["agentimage"].(string); ok {
		item.AgentImage = agentImage
	}
	f.byID[id] = item
	return item, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) (bool, error) {
	item, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	delete(f.byReference, item.Reference)
	delete(f.byID, id)
	return true, nil
}

func (f *fakeRepository) ReferenceInUse(ctx context.Context, reference, excludeID string) (bool, error) {
	id, ok := f.byReference[reference]
	return ok && id != excludeID, nil
}

func validRequest(reference string) UpsertRequest {
	return UpsertRequest{
		Reference:       reference,
		PropertyType:    "Villa",
		Size:            "12000 sqft",
		Bedrooms:        "6",
		Bathrooms:       "7",
		FurnishingType:  "Furnished",
		BuiltUpArea:     "10000 sqft",
		ProjectStatus:   "Ready",
		Community:       "Palm Jumeirah",
		SubCommunity:    "Frond A",
		Country:         "UAE",
		Price:           "45000000",
		Title:           "Signature Villa",
		Subtitle:        "Beachfront living",
		Description:     "A signature beachfront villa.",
		Amenities:       "Pool, Gym",
		PropertyAddress: "Frond A, Palm Jumeirah",
		UnitNo:          "12",
		Tag:             "Exclusive",
		Status:          "For Sale",
		AgentName:       "Jordan Miles",
		Designation:     "Senior Agent",
		Email:           "jordan@example.com",
		Phone:           "+971500000000",
		WhatsAppNo:      "+971500000000",
		CallNo:          "+971400000000",
	}
}

func TestCreateAssignsIDAndStores(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	item, err := svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/a.jpg", AgentImage: "/uploads/b.jpg"})
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, "MM-100", item.Reference)
	require.Equal(t, "/uploads/a.jpg", item.Image)
}

func TestCreateDuplicateReference(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/a.jpg", AgentImage: "/uploads/b.jpg"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/c.jpg", AgentImage: "/uploads/d.jpg"})
	require.ErrorIs(t, err, ErrDuplicateReference)
}

func TestUpdateKeepsStoredFilesWhenNoneUploaded(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/a.jpg", Video: "/uploads/v.mp4", AgentImage: "/uploads/b.jpg"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, validRequest("MM-100"), FileSet{})
	require.NoError(t, err)
	require.Equal(t, "/uploads/a.jpg", updated.Image)
	require.Equal(t, "/uploads/v.mp4", updated.Video)
	require.NotContains(t, repo.lastSet, "image")
	require.NotContains(t, repo.lastSet, "video")
	require.NotContains(t, repo.lastSet, "agentimage")
}

func TestUpdateMergesNewUploads(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/a.jpg", AgentImage: "/uploads/b.jpg"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, validRequest("MM-100"), FileSet{Image: "/uploads/new.jpg"})
	require.NoError(t, err)
	require.Equal(t, "/uploads/new.jpg", updated.Image)
	require.Equal(t, "/uploads/b.jpg", updated.AgentImage)
}

func TestUpdateRejectsReferenceTakenByOther(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/a.jpg", AgentImage: "/uploads/b.jpg"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), validRequest("MM-200"), FileSet{Image: "/uploads/c.jpg", AgentImage: "/uploads/d.jpg"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), first.ID, validRequest("MM-200"), FileSet{})
	require.ErrorIs(t, err, ErrDuplicateReference)
}

func TestUpdateAllowsKeepingOwnReference(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validRequest("MM-100"), FileSet{Image: "/uploads/a.jpg", AgentImage: "/uploads/b.jpg"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, validRequest("MM-100"), FileSet{})
	require.NoError(t, err)
}

func TestGetByReferenceNotFound(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.GetByReference(context.Background(), "MM-404")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepository())

	err := svc.Delete(context.Background(), "64b000000000000000000000")
	require.ErrorIs(t, err, ErrNotFound)
}
