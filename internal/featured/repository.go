package featured

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository interface {
	GetByFamily(ctx context.Context, family Family) (Set, error)
	UpsertReferences(ctx context.Context, family Family, references []string) (Set, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetByFamily(ctx context.Context, family Family) (Set, error) {
	var set Set
	if err := r.col.FindOne(ctx, bson.M{"_id": family}).Decode(&set); err != nil {
		return Set{}, err
	}
	return set, nil
}

// UpsertReferences overwrites the family's reference list in one write,
// creating the singleton on first use. It never appends.
func (r *MongoRepository) UpsertReferences(ctx context.Context, family Family, references []string) (Set, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"references": references,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated Set
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": family}, update, opts).Decode(&updated); err != nil {
		return Set{}, err
	}
	return updated, nil
}
