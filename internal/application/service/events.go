package service

import (
	"context"

	"github.com/laybeentan/portfolio-api/internal/domain/contact"
)

// EventPublisher notifies downstream consumers of new contact submissions.
// Publishing is best effort: a failure never fails the originating request.
type EventPublisher interface {
	PublishContactSubmitted(ctx context.Context, sub *contact.ContactSubmission) error
}
