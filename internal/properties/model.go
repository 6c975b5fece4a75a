package properties

import "time"

// PropertyDetail is the canonical listing. Reference is the caller-assigned
// unique identifier, distinct from the store id.
type PropertyDetail struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Reference       string    `bson:"reference" json:"reference"`
	PropertyType    string    `bson:"propertytype" json:"propertytype"`
	Size            string    `bson:"size" json:"size"`
	Bedrooms        string    `bson:"bedrooms" json:"bedrooms"`
	Bathrooms       string    `bson:"bathrooms" json:"bathrooms"`
	FurnishingType  string    `bson:"furnishingtype" json:"furnishingtype"`
	BuiltUpArea     string    `bson:"builtuparea" json:"builtuparea"`
	ProjectStatus   string    `bson:"projectstatus" json:"projectstatus"`
	Community       string    `bson:"community" json:"community"`
	SubCommunity    string    `bson:"subcommunity" json:"subcommunity"`
	Country         string    `bson:"country" json:"country"`
	Price           string    `bson:"price" json:"price"`
	Title           string    `bson:"title" json:"title"`
	Subtitle        string    `bson:"subtitle" json:"subtitle"`
	Description     string    `bson:"description" json:"description"`
	Amenities       string    `bson:"amenities" json:"amenities"`
	Image           string    `bson:"image" json:"image"`
	Video           string    `bson:"video,omitempty" json:"video,omitempty"`
	PropertyAddress string    `bson:"propertyaddress" json:"propertyaddress"`
	UnitNo          string    `bson:"unitno" json:"unitno"`
	Tag             string    `bson:"tag" json:"tag"`
	Status          string    `bson:"status" json:"status"`
	AgentName       string    `bson:"agentname" json:"agentname"`
	Designation     string    `bson:"designation" json:"designation"`
	Email           string    `bson:"email" json:"email"`
	Phone           string    `bson:"phone" json:"phone"`
	WhatsAppNo      string    `bson:"whatsaapno" json:"whatsaapno"`
	CallNo          string    `bson:"callno" json:"callno"`
	AgentImage      string    `bson:"agentimage" json:"agentimage"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Reference       string `json:"reference" validate:"required"`
	PropertyType    string `json:"propertytype" validate:"required"`
	Size            string `json:"size" validate:"required"`
	Bedrooms        string `json:"bedrooms" validate:"required"`
	Bathrooms       string `json:"bathrooms" validate:"required"`
	FurnishingType  string `json:"furnishingtype" validate:"required"`
	BuiltUpArea     string `json:"builtuparea" validate:"required"`
	ProjectStatus   string `json:"projectstatus" validate:"required"`
	Community       string `json:"community" validate:"required"`
	SubCommunity    string `json:"subcommunity" validate:"required"`
	Country         string `json:"country" validate:"required"`
	Price           string `json:"price" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Subtitle        string `json:"subtitle" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Amenities       string `json:"amenities" validate:"required"`
	PropertyAddress string `json:"propertyaddress" validate:"required"`
	UnitNo          string `json:"unitno" validate:"required"`
	Tag             string `json:"tag" validate:"required"`
	Status          string `json:"status" validate:"required"`
	AgentName       string `json:"agentname" validate:"required"`
	Designation     string `json:"designation" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone"`
	WhatsAppNo      string `json:"whatsaapno" validate:"required"`
	CallNo          string `json:"callno" validate:"required"`
}

// FileSet carries blob reference paths produced by the upload storage. Empty
// entries on update mean "leave the stored path untouched".
type FileSet struct {
	Image      string
	Video      string
	AgentImage string
}
