package subscribers

import "time"

// NewsletterSignup is a site-wide newsletter subscription.
type NewsletterSignup struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Category  string    `bson:"category" json:"category"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// MagazineEmail is a magazine-only mailing list entry.
type MagazineEmail struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type NewsletterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"omitempty,max=100"`
}

type MagazineEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
