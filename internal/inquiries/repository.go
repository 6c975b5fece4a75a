package inquiries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item Inquiry) error
	Get(ctx context.Context, id string) (Inquiry, error)
	List(ctx context.Context) ([]Inquiry, error)
	Update(ctx context.Context, id string, set bson.M) (Inquiry, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item Inquiry) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Get(ctx context.Context, id string) (Inquiry, error) {
	var item Inquiry
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return Inquiry{}, err
	}
	return item, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := make([]Inquiry, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (Inquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Inquiry
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return Inquiry{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
