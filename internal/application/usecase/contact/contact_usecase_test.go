package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/laybeentan/portfolio-api/internal/domain/contact"
	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type stubContactRepo struct {
	created *contact.ContactSubmission
	err     error
}

func (s *stubContactRepo) Create(ctx context.Context, sub *contact.ContactSubmission) (*contact.ContactSubmission, error) {
	if s.err != nil {
		return nil, s.err
	}
	sub.ID = primitive.NewObjectID()
	s.created = sub
	return sub, nil
}

type recordingPublisher struct {
	published []*contact.ContactSubmission
	err       error
}

func (p *recordingPublisher) PublishContactSubmitted(ctx context.Context, sub *contact.ContactSubmission) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, sub)
	return nil
}

func newUseCase(repo *stubContactRepo, pub *recordingPublisher) *ContactUseCase {
	return NewContactUseCase(repo, pub, logger.NewZapLogger("development"))
}

func Test_Submit_StoresSubmissionAsNew(t *testing.T) {
	repo := &stubContactRepo{}
	pub := &recordingPublisher{}

	sub, err := newUseCase(repo, pub).Submit(context.Background(), SubmitContactInput{
		Name:    "Alex Rivera",
		Email:   "alex@example.com",
		Subject: "Consulting inquiry",
		Message: "Would love to discuss a security audit.",
	})

	require.NoError(t, err)
	assert.False(t, sub.ID.IsZero())
	assert.Equal(t, contact.StatusNew, sub.Status)
	assert.False(t, sub.SubmittedAt.IsZero())
	assert.Equal(t, "alex@example.com", repo.created.Email)
}

func Test_Submit_PublishesContactEvent(t *testing.T) {
	repo := &stubContactRepo{}
	pub := &recordingPublisher{}

	sub, err := newUseCase(repo, pub).Submit(context.Background(), SubmitContactInput{
		Name:  "Alex Rivera",
		Email: "alex@example.com",
	})

	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	assert.Equal(t, sub.ID, pub.published[0].ID)
}

func Test_Submit_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := &stubContactRepo{}
	pub := &recordingPublisher{err: errors.New("broker unavailable")}

	sub, err := newUseCase(repo, pub).Submit(context.Background(), SubmitContactInput{
		Name:  "Alex Rivera",
		Email: "alex@example.com",
	})

	require.NoError(t, err)
	assert.False(t, sub.ID.IsZero())
}

func Test_Submit_PropagatesStorageError(t *testing.T) {
	repo := &stubContactRepo{err: apperror.NewStorage("insert failed", errors.New("socket closed"))}
	pub := &recordingPublisher{}

	_, err := newUseCase(repo, pub).Submit(context.Background(), SubmitContactInput{
		Name:  "Alex Rivera",
		Email: "alex@example.com",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrStorage))
	assert.Empty(t, pub.published)
}
