package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/apperror"
)

type mongoProfileRepo struct {
	store *Store
}

func NewMongoProfileRepo(store *Store) profile.Repository {
	return &mongoProfileRepo{store: store}
}

func (r *mongoProfileRepo) GetSingleton(ctx context.Context) (*profile.Profile, error) {
	profiles, err := find[profile.Profile](ctx, r.store, CollectionProfiles, nil, "", true)
	if err != nil {
		return nil, err
	}

	switch len(profiles) {
	case 0:
		return nil, nil
	case 1:
		return &profiles[0], nil
	default:
		// More than one profile means seeding went wrong. Fail instead of
		// silently picking one.
		return nil, apperror.NewInternal(fmt.Sprintf("expected a single profile document, found %d", len(profiles)), nil)
	}
}

func (r *mongoProfileRepo) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return insertOne(ctx, r.store, CollectionProfiles, p)
}
