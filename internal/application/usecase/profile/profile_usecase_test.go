package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type stubProfileRepo struct {
	profile *profile.Profile
	err     error
	calls   int
}

func (s *stubProfileRepo) GetSingleton(ctx context.Context) (*profile.Profile, error) {
	s.calls++
	return s.profile, s.err
}

func (s *stubProfileRepo) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	return p, nil
}

type memCache struct {
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return val, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.entries[key] = value
	return nil
}

func Test_GetProfile_NotFoundWhenAbsent(t *testing.T) {
	uc := NewProfileUseCase(&stubProfileRepo{}, newMemCache(), logger.NewZapLogger("development"))

	p, err := uc.GetProfile(context.Background())

	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func Test_GetProfile_ReturnsSingleton(t *testing.T) {
	stored := &profile.Profile{ID: primitive.NewObjectID(), Name: "Lay Been Tan", Title: "Network Security Leader"}
	uc := NewProfileUseCase(&stubProfileRepo{profile: stored}, newMemCache(), logger.NewZapLogger("development"))

	p, err := uc.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored.ID, p.ID)
	assert.Equal(t, "Lay Been Tan", p.Name)
}

func Test_GetProfile_SecondCallServedFromCache(t *testing.T) {
	repo := &stubProfileRepo{profile: &profile.Profile{ID: primitive.NewObjectID(), Name: "Lay Been Tan"}}
	uc := NewProfileUseCase(repo, newMemCache(), logger.NewZapLogger("development"))

	_, err := uc.GetProfile(context.Background())
	require.NoError(t, err)

	p, err := uc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Lay Been Tan", p.Name)
	assert.Equal(t, 1, repo.calls)
}

func Test_GetProfile_PropagatesRepositoryError(t *testing.T) {
	repo := &stubProfileRepo{err: apperror.NewStorage("profiles query failed", errors.New("connection reset"))}
	uc := NewProfileUseCase(repo, newMemCache(), logger.NewZapLogger("development"))

	_, err := uc.GetProfile(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrStorage))
}
