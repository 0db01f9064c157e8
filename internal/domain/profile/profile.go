package profile

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the single career profile every other portfolio entity
// references through its profile_id field.
type Profile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Title           string             `bson:"title" json:"title"`
	Location        string             `bson:"location" json:"location"`
	Email           string             `bson:"email" json:"email"`
	LinkedIn        string             `bson:"linkedin" json:"linkedin"`
	YearsExperience int                `bson:"years_experience" json:"years_experience"`
	CurrentCompany  string             `bson:"current_company" json:"current_company"`
	Specialization  string             `bson:"specialization" json:"specialization"`
	Summary         string             `bson:"summary" json:"summary"`
	KeyStrengths    []string           `bson:"key_strengths" json:"key_strengths"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

type Repository interface {
	// GetSingleton returns (nil, nil) when no profile document exists, and an
	// error when more than one does. The profile is a singleton by contract,
	// not by store constraint.
	GetSingleton(ctx context.Context) (*Profile, error)
	Create(ctx context.Context, p *Profile) (*Profile, error)
}
