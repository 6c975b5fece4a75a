package sections

import "time"

// Section keys. Each key owns exactly one document, upserted in place.
const (
	KeyHero       = "hero"
	KeyMagazine   = "magazine"
	KeyMansion    = "mansion"
	KeyPenthouse  = "penthouse"
	KeyCollection = "collection"
)

// Banner is an image-led section block (hero, magazine header).
type Banner struct {
	ID         string    `bson:"_id" json:"id"`
	Heading    string    `bson:"heading" json:"heading"`
	Subheading string    `bson:"subheading" json:"subheading"`
	Image      string    `bson:"image" json:"image"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// Promo is a text-and-button section block (mansion, penthouse, collection).
type Promo struct {
	ID          string    `bson:"_id" json:"id"`
	Description string    `bson:"description" json:"description"`
	ButtonText  string    `bson:"btntext" json:"btntext"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type BannerUpsertRequest struct {
	Heading    string `json:"heading" validate:"required"`
	Subheading string `json:"subheading" validate:"required"`
}

type PromoUpsertRequest struct {
	Description string `json:"description" validate:"required"`
	ButtonText  string `json:"btntext" validate:"required"`
}
