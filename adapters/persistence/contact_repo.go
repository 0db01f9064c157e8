package persistence

import (
	"context"

	"github.com/laybeentan/portfolio-api/internal/domain/contact"
)

type mongoContactRepo struct {
	store *Store
}

func NewMongoContactRepo(store *Store) contact.Repository {
	return &mongoContactRepo{store: store}
}

func (r *mongoContactRepo) Create(ctx context.Context, sub *contact.ContactSubmission) (*contact.ContactSubmission, error) {
	return insertOne(ctx, r.store, CollectionContactSubmissions, sub)
}
