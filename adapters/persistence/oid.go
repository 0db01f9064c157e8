package persistence

import "go.mongodb.org/mongo-driver/bson/primitive"

// IsValidID reports whether raw is a well-formed document id, a 24-character
// hex string.
func IsValidID(raw string) bool {
	return primitive.IsValidObjectID(raw)
}

// DecodeID converts raw to the store's native id type. It never errors:
// ok is false for malformed input, and callers treat that identically to
// "no matching document".
func DecodeID(raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
