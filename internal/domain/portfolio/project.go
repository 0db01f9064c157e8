package portfolio

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a highlighted engagement. Metrics is an open, schema-less map;
// its contents are display strings and never computed on.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProfileID    primitive.ObjectID `bson:"profile_id" json:"profile_id"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category" json:"category"`
	Status       string             `bson:"status" json:"status"`
	StartDate    string             `bson:"start_date" json:"start_date"`
	EndDate      *string            `bson:"end_date" json:"end_date"`
	Description  string             `bson:"description" json:"description"`
	Challenges   []string           `bson:"challenges" json:"challenges"`
	Solutions    []string           `bson:"solutions" json:"solutions"`
	Impact       []string           `bson:"impact" json:"impact"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Metrics      map[string]any     `bson:"metrics" json:"metrics"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
