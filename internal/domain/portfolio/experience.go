package portfolio

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Experience is one work-history entry. A nil EndDate marks the current role.
type Experience struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProfileID    primitive.ObjectID `bson:"profile_id" json:"profile_id"`
	Company      string             `bson:"company" json:"company"`
	Role         string             `bson:"role" json:"role"`
	StartDate    string             `bson:"start_date" json:"start_date"`
	EndDate      *string            `bson:"end_date" json:"end_date"`
	Duration     string             `bson:"duration" json:"duration"`
	Location     string             `bson:"location" json:"location"`
	Description  string             `bson:"description" json:"description"`
	Achievements []string           `bson:"achievements" json:"achievements"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
