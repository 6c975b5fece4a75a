package main

import (
	"context"
	"log"
	"time"

	"mansionmarket-backend/internal/auth"
	"mansionmarket-backend/internal/config"
	"mansionmarket-backend/internal/db"
	"mansionmarket-backend/internal/sections"
	"mansionmarket-backend/internal/users"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedBanner struct {
	Key        string
	Heading    string
	Subheading string
}

type seedPromo struct {
	Key         string
	Description string
	ButtonText  string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	banners := []seedBanner{
		{Key: sections.KeyHero, Heading: "Find Your Dream Mansion", Subheading: "Exceptional homes in the world's most desirable locations"},
		{Key: sections.KeyMagazine, Heading: "The Mansion Market Magazine", Subheading: "Stories from the world of luxury real estate"},
	}

	for _, b := range banners {
		update := bson.M{
			"$setOnInsert": bson.M{
				"heading":    b.Heading,
				"subheading": b.Subheading,
				"image":      "",
				"created_at": time.Now(),
				"updated_at": time.Now(),
			},
		}
		if _, err := cols.Banners.UpdateOne(ctx, bson.M{"_id": b.Key}, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for banner %s: %v", b.Key, err)
		}
	}

	promos := []seedPromo{
		{Key: sections.KeyMansion, Description: "Explore our curated collection of mansions", ButtonText: "View Mansions"},
		{Key: sections.KeyPenthouse, Description: "Penthouses with skyline views", ButtonText: "View Penthouses"},
		{Key: sections.KeyCollection, Description: "Rare collectible properties", ButtonText: "View Collection"},
	}

	for _, p := range promos {
		update := bson.M{
			"$setOnInsert": bson.M{
				"description": p.Description,
				"btntext":     p.ButtonText,
				"created_at":  time.Now(),
				"updated_at":  time.Now(),
			},
		}
		if _, err := cols.Promos.UpdateOne(ctx, bson.M{"_id": p.Key}, update, options.Update().SetUpsert(true)); err != nil {
			log.Fatalf("seed error for promo %s: %v", p.Key, err)
		}
	}

	if cfg.SuperadminEmail == "" || cfg.SuperadminPassword == "" {
		log.Println("seed superadmin: SUPERADMIN_EMAIL or SUPERADMIN_PASSWORD missing, skipping")
	} else if err := seedSuperadmin(ctx, cols, cfg.SuperadminEmail, cfg.SuperadminPassword); err != nil {
		log.Fatalf("seed superadmin error: %v", err)
	}

	log.Println("seed completed")
}

func seedSuperadmin(ctx context.Context, cols *db.Collections, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"password_hash": hash,
			"role":          users.RoleSuperadmin,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID().Hex(),
			"firstname":  "Super",
			"lastname":   "Admin",
			"created_at": now,
		},
	}

	_, err = cols.Users.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	return err
}
