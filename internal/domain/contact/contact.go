package contact

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusNew is the lifecycle state every submission starts in. Nothing in the
// API advances it; triage happens out of band.
const StatusNew = "new"

// ContactSubmission is a message from a site visitor. It is global inbox
// content and carries no profile reference.
type ContactSubmission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Subject     string             `bson:"subject" json:"subject"`
	Message     string             `bson:"message" json:"message"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
	Status      string             `bson:"status" json:"status"`
}

type Repository interface {
	Create(ctx context.Context, sub *ContactSubmission) (*ContactSubmission, error)
}
