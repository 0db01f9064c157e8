package contact

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/laybeentan/portfolio-api/internal/application/service"
	"github.com/laybeentan/portfolio-api/internal/domain/contact"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type ContactUseCase struct {
	repo   contact.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewContactUseCase(repo contact.Repository, events service.EventPublisher, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{repo: repo, events: events, logger: log}
}

type SubmitContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Submit stores the submission unconditionally: no deduplication, no rate
// limiting. The downstream event is best effort and never fails the request.
func (uc *ContactUseCase) Submit(ctx context.Context, in SubmitContactInput) (*contact.ContactSubmission, error) {
	sub := &contact.ContactSubmission{
		Name:        in.Name,
		Email:       in.Email,
		Subject:     in.Subject,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC(),
		Status:      contact.StatusNew,
	}

	created, err := uc.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	if err := uc.events.PublishContactSubmitted(ctx, created); err != nil {
		uc.logger.Warn("contact event publish failed", zap.String("submission_id", created.ID.Hex()), zap.Error(err))
	}

	return created, nil
}
