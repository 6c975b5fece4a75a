package sections

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BannerRepository interface {
	GetByKey(ctx context.Context, key string) (Banner, error)
	Upsert(ctx context.Context, key string, set, setOnInsert bson.M) (Banner, error)
	Update(ctx context.Context, key string, set bson.M) (Banner, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type PromoRepository interface {
	GetByKey(ctx context.Context, key string) (Promo, error)
	Upsert(ctx context.Context, key string, set, setOnInsert bson.M) (Promo, error)
	Update(ctx context.Context, key string, set bson.M) (Promo, error)
	Delete(ctx context.Context, key string) (bool, error)
}

type BannerMongoRepository struct {
	col *mongo.Collection
}

func NewBannerRepository(col *mongo.Collection) *BannerMongoRepository {
	return &BannerMongoRepository{col: col}
}

func (r *BannerMongoRepository) GetByKey(ctx context.Context, key string) (Banner, error) {
	var item Banner
	if err := r.col.FindOne(ctx, bson.M{"_id": key}).Decode(&item); err != nil {
		return Banner{}, err
	}
	return item, nil
}

func (r *BannerMongoRepository) Upsert(ctx context.Context, key string, set, setOnInsert bson.M) (Banner, error) {
	update := bson.M{"$set": set}
	if len(setOnInsert) > 0 {
		update["$setOnInsert"] = setOnInsert
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated Banner
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": key}, update, opts).Decode(&updated); err != nil {
		return Banner{}, err
	}
	return updated, nil
}

func (r *BannerMongoRepository) Update(ctx context.Context, key string, set bson.M) (Banner, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Banner
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": key}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return Banner{}, err
	}
	return updated, nil
}

func (r *BannerMongoRepository) Delete(ctx context.Context, key string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type PromoMongoRepository struct {
	col *mongo.Collection
}

func NewPromoRepository(col *mongo.Collection) *PromoMongoRepository {
	return &PromoMongoRepository{col: col}
}

func (r *PromoMongoRepository) GetByKey(ctx context.Context, key string) (Promo, error) {
	var item Promo
	if err := r.col.FindOne(ctx, bson.M{"_id": key}).Decode(&item); err != nil {
		return Promo{}, err
	}
	return item, nil
}

func (r *PromoMongoRepository) Upsert(ctx context.Context, key string, set, setOnInsert bson.M) (Promo, error) {
	update := bson.M{"$set": set}
	if len(setOnInsert) > 0 {
		update["$setOnInsert"] = setOnInsert
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated Promo
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": key}, update, opts).Decode(&updated); err != nil {
		return Promo{}, err
	}
	return updated, nil
}

func (r *PromoMongoRepository) Update(ctx context.Context, key string, set bson.M) (Promo, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Promo
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": key}, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		return Promo{}, err
	}
	return updated, nil
}

func (r *PromoMongoRepository) Delete(ctx context.Context, key string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
