package portfolio

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Certification struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProfileID    primitive.ObjectID `bson:"profile_id" json:"profile_id"`
	Name         string             `bson:"name" json:"name"`
	Issuer       string             `bson:"issuer" json:"issuer"`
	DateObtained string             `bson:"date_obtained" json:"date_obtained"`
	Status       string             `bson:"status" json:"status"`
	Relevance    string             `bson:"relevance" json:"relevance"`
	Order        int                `bson:"order" json:"order"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type Education struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProfileID   primitive.ObjectID `bson:"profile_id" json:"profile_id"`
	Degree      string             `bson:"degree" json:"degree"`
	Institution string             `bson:"institution" json:"institution"`
	StartDate   string             `bson:"start_date" json:"start_date"`
	EndDate     string             `bson:"end_date" json:"end_date"`
	Location    string             `bson:"location" json:"location"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
