package articles

import "time"

// Article is a magazine piece. Slug is derived from the title at create time
// and never changes afterwards, so published links stay stable.
type Article struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Category  string    `bson:"category" json:"category"`
	Author    string    `bson:"author" json:"author"`
	Title     string    `bson:"title" json:"title"`
	Subtitle  string    `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Time      string    `bson:"time" json:"time"`
	MainImage string    `bson:"mainImage" json:"mainImage"`
	Content   string    `bson:"content" json:"content"`
	Slug      string    `bson:"slug" json:"slug"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Category string `json:"category" validate:"required"`
	Author   string `json:"author" validate:"required,max=100"`
	Title    string `json:"title" validate:"required,max=200"`
	Subtitle string `json:"subtitle" validate:"omitempty,max=500"`
	Time     string `json:"time" validate:"required,datetime=2006-01-02"`
	Content  string `json:"content" validate:"required"`
}
