package httpx

import "go.mongodb.org/mongo-driver/bson/primitive"

// ValidObjectID reports whether id is a well-formed hex ObjectID. Handlers use
// it to answer 400 for malformed ids before touching the store.
func ValidObjectID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
