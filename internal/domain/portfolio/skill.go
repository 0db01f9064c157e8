package portfolio

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill is a single proficiency entry. Skills are stored flat and grouped by
// category at the projection layer.
type Skill struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProfileID   primitive.ObjectID `bson:"profile_id" json:"profile_id"`
	Category    string             `bson:"category" json:"category"`
	Name        string             `bson:"name" json:"name"`
	Proficiency int                `bson:"proficiency" json:"proficiency"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
