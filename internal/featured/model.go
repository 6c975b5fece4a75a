package featured

import "time"

// Family identifies one of the four independent featured lists.
type Family string

const (
	FamilyGlobal       Family = "global"
	FamilyMansion      Family = "mansion"
	FamilyPenthouse    Family = "penthouse"
	FamilyCollectibles Family = "collectibles"
)

// Set is the singleton allowlist document for one family. The family name is
// the document key, so there is never more than one per family.
type Set struct {
	Family     Family    `bson:"_id" json:"family"`
	References []string  `bson:"references" json:"references"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

type SetRequest struct {
	References []string `json:"references"`
}
