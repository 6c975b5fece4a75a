package subscribers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NewsletterRepository interface {
	Create(ctx context.Context, item NewsletterSignup) error
	Get(ctx context.Context, id string) (NewsletterSignup, error)
	List(ctx context.Context) ([]NewsletterSignup, error)
	Update(ctx context.Context, id string, set bson.M) (NewsletterSignup, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MagazineEmailRepository interface {
	Create(ctx context.Context, item MagazineEmail) error
	Get(ctx context.Context, id string) (MagazineEmail, error)
	List(ctx context.Context) ([]MagazineEmail, error)
	Update(ctx context.Context, id string, set bson.M) (MagazineEmail, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type NewsletterMongoRepository struct {
	col *mongo.Collection
}

func NewNewsletterRepository(col *mongo.Collection) *NewsletterMongoRepository {
	return &NewsletterMongoRepository{col: col}
}

func (r *NewsletterMongoRepository) Create(ctx context.Context, item NewsletterSignup) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *NewsletterMongoRepository) Get(ctx context.Context, id string) (NewsletterSignup, error) {
	var item NewsletterSignup
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return NewsletterSignup{}, err
	}
	return item, nil
}

func (r *NewsletterMongoRepository) List(ctx context.Context) ([]NewsletterSignup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]NewsletterSignup, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *NewsletterMongoRepository) Update(ctx context.Context, id string, set bson.M) (NewsletterSignup, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated NewsletterSignup
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return NewsletterSignup{}, err
	}
	return updated, nil
}

func (r *NewsletterMongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type MagazineEmailMongoRepository struct {
	col *mongo.Collection
}

func NewMagazineEmailRepository(col *mongo.Collection) *MagazineEmailMongoRepository {
	return &MagazineEmailMongoRepository{col: col}
}

func (r *MagazineEmailMongoRepository) Create(ctx context.Context, item MagazineEmail) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MagazineEmailMongoRepository) Get(ctx context.Context, id string) (MagazineEmail, error) {
	var item MagazineEmail
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return MagazineEmail{}, err
	}
	return item, nil
}

func (r *MagazineEmailMongoRepository) List(ctx context.Context) ([]MagazineEmail, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]MagazineEmail, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MagazineEmailMongoRepository) Update(ctx context.Context, id string, set bson.M) (MagazineEmail, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated MagazineEmail
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return MagazineEmail{}, err
	}
	return updated, nil
}

func (r *MagazineEmailMongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
