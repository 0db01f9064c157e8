package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
)

type mongoExperienceRepo struct {
	store *Store
}

func NewMongoExperienceRepo(store *Store) portfolio.ExperienceRepository {
	return &mongoExperienceRepo{store: store}
}

func (r *mongoExperienceRepo) Create(ctx context.Context, e *portfolio.Experience) (*portfolio.Experience, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return insertOne(ctx, r.store, CollectionExperiences, e)
}

func (r *mongoExperienceRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Experience, error) {
	return findByProfile[portfolio.Experience](ctx, r.store, CollectionExperiences, profileID, "order")
}

type mongoSkillRepo struct {
	store *Store
}

func NewMongoSkillRepo(store *Store) portfolio.SkillRepository {
	return &mongoSkillRepo{store: store}
}

func (r *mongoSkillRepo) Create(ctx context.Context, s *portfolio.Skill) (*portfolio.Skill, error) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return insertOne(ctx, r.store, CollectionSkills, s)
}

func (r *mongoSkillRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Skill, error) {
	return findByProfile[portfolio.Skill](ctx, r.store, CollectionSkills, profileID, "order")
}

type mongoProjectRepo struct {
	store *Store
}

func NewMongoProjectRepo(store *Store) portfolio.ProjectRepository {
	return &mongoProjectRepo{store: store}
}

func (r *mongoProjectRepo) Create(ctx context.Context, p *portfolio.Project) (*portfolio.Project, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return insertOne(ctx, r.store, CollectionProjects, p)
}

func (r *mongoProjectRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Project, error) {
	return findByProfile[portfolio.Project](ctx, r.store, CollectionProjects, profileID, "order")
}

func (r *mongoProjectRepo) CountByProfile(ctx context.Context, profileID string) (int64, error) {
	oid, ok := DecodeID(profileID)
	if !ok {
		return 0, nil
	}
	return count(ctx, r.store, CollectionProjects, bson.M{"profile_id": oid})
}

type mongoCertificationRepo struct {
	store *Store
}

func NewMongoCertificationRepo(store *Store) portfolio.CertificationRepository {
	return &mongoCertificationRepo{store: store}
}

func (r *mongoCertificationRepo) Create(ctx context.Context, c *portfolio.Certification) (*portfolio.Certification, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return insertOne(ctx, r.store, CollectionCertifications, c)
}

func (r *mongoCertificationRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Certification, error) {
	return findByProfile[portfolio.Certification](ctx, r.store, CollectionCertifications, profileID, "order")
}

type mongoEducationRepo struct {
	store *Store
}

func NewMongoEducationRepo(store *Store) portfolio.EducationRepository {
	return &mongoEducationRepo{store: store}
}

func (r *mongoEducationRepo) Create(ctx context.Context, e *portfolio.Education) (*portfolio.Education, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	return insertOne(ctx, r.store, CollectionEducation, e)
}

func (r *mongoEducationRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Education, error) {
	return findByProfile[portfolio.Education](ctx, r.store, CollectionEducation, profileID, "order")
}
