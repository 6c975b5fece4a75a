package properties

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	Create(ctx context.Context, item PropertyDetail) error
	Get(ctx context.Context, id string) (PropertyDetail, error)
	GetByReference(ctx context.Context, reference string) (PropertyDetail, error)
	FindByReferences(ctx context.Context, references []string) ([]PropertyDetail, error)
	List(ctx context.Context) ([]PropertyDetail, error)
	Update(ctx context.Context, id string, set bson.M) (PropertyDetail, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReferenceInUse(ctx context.Context, reference, excludeID string) (bool, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, item PropertyDetail) error {
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Get(ctx context.Context, id string) (PropertyDetail, error) {
	var item PropertyDetail
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return PropertyDetail{}, err
	}
	return item, nil
}

func (r *MongoRepository) GetByReference(ctx context.Context, reference string) (PropertyDetail, error) {
	var item PropertyDetail
	if err := r.col.FindOne(ctx, bson.M{"reference": reference}).Decode(&item); err != nil {
		return PropertyDetail{}, err
	}
	return item, nil
}

// FindByReferences is a single set-membership query; result order is whatever
// the store returns, not the order of the input slice.
func (r *MongoRepository) FindByReferences(ctx context.Context, references []string) ([]PropertyDetail, error) {
	cursor, err := r.col.Find(ctx, bson.M{"reference": bson.M{"$in": references}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]PropertyDetail, 0)
	for cursor.Next(ctx) {
		var item PropertyDetail
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]PropertyDetail, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]PropertyDetail, 0)
	for cursor.Next(ctx) {
		var item PropertyDetail
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, set bson.M) (PropertyDetail, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated PropertyDetail
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return PropertyDetail{}, err
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

func (r *MongoRepository) ReferenceInUse(ctx context.Context, reference, excludeID string) (bool, error) {
	query := bson.M{"reference": reference}
	if excludeID != "" {
		query["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
