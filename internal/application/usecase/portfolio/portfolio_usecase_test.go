package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type stubProfileRepo struct {
	profile *profile.Profile
	calls   int
}

func (s *stubProfileRepo) GetSingleton(ctx context.Context) (*profile.Profile, error) {
	s.calls++
	return s.profile, nil
}

func (s *stubProfileRepo) Create(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	return p, nil
}

type stubExperienceRepo struct {
	items []portfolio.Experience
}

func (s *stubExperienceRepo) Create(ctx context.Context, e *portfolio.Experience) (*portfolio.Experience, error) {
	return e, nil
}

func (s *stubExperienceRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Experience, error) {
	return s.items, nil
}

type stubSkillRepo struct {
	items []portfolio.Skill
}

func (s *stubSkillRepo) Create(ctx context.Context, sk *portfolio.Skill) (*portfolio.Skill, error) {
	return sk, nil
}

func (s *stubSkillRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Skill, error) {
	return s.items, nil
}

type stubProjectRepo struct {
	items      []portfolio.Project
	count      int64
	countCalls int
}

func (s *stubProjectRepo) Create(ctx context.Context, p *portfolio.Project) (*portfolio.Project, error) {
	return p, nil
}

func (s *stubProjectRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Project, error) {
	return s.items, nil
}

func (s *stubProjectRepo) CountByProfile(ctx context.Context, profileID string) (int64, error) {
	s.countCalls++
	return s.count, nil
}

type stubCertificationRepo struct {
	items []portfolio.Certification
}

func (s *stubCertificationRepo) Create(ctx context.Context, c *portfolio.Certification) (*portfolio.Certification, error) {
	return c, nil
}

func (s *stubCertificationRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Certification, error) {
	return s.items, nil
}

type stubEducationRepo struct {
	items []portfolio.Education
}

func (s *stubEducationRepo) Create(ctx context.Context, e *portfolio.Education) (*portfolio.Education, error) {
	return e, nil
}

func (s *stubEducationRepo) ListByProfile(ctx context.Context, profileID string) ([]portfolio.Education, error) {
	return s.items, nil
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

type fixture struct {
	profiles       *stubProfileRepo
	experience     *stubExperienceRepo
	skills         *stubSkillRepo
	projects       *stubProjectRepo
	certifications *stubCertificationRepo
	education      *stubEducationRepo
	cache          *memCache
}

func newFixture(p *profile.Profile) *fixture {
	return &fixture{
		profiles:       &stubProfileRepo{profile: p},
		experience:     &stubExperienceRepo{},
		skills:         &stubSkillRepo{},
		projects:       &stubProjectRepo{},
		certifications: &stubCertificationRepo{},
		education:      &stubEducationRepo{},
		cache:          newMemCache(),
	}
}

func (f *fixture) useCase() *PortfolioUseCase {
	return NewPortfolioUseCase(
		f.profiles,
		f.experience,
		f.skills,
		f.projects,
		f.certifications,
		f.education,
		f.cache,
		logger.NewZapLogger("development"),
	)
}

func testProfile() *profile.Profile {
	return &profile.Profile{ID: primitive.NewObjectID(), Name: "Lay Been Tan", YearsExperience: 31}
}

func Test_ListExperience_EmptyWhenNoProfile(t *testing.T) {
	f := newFixture(nil)
	f.experience.items = []portfolio.Experience{{Company: "Nokia"}}

	items, err := f.useCase().ListExperience(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func Test_ListExperience_ScopedToSingletonProfile(t *testing.T) {
	f := newFixture(testProfile())
	f.experience.items = []portfolio.Experience{
		{Company: "Nokia", Order: 1},
		{Company: "Alcatel Canada", Order: 2},
	}

	items, err := f.useCase().ListExperience(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Nokia", items[0].Company)
}

func Test_ListSkills_EmptyWhenNoProfile(t *testing.T) {
	f := newFixture(nil)
	f.skills.items = []portfolio.Skill{{Name: "Risk Assessment"}}

	items, err := f.useCase().ListSkills(context.Background())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func Test_ListProjects_ReturnsStoredProjects(t *testing.T) {
	f := newFixture(testProfile())
	f.projects.items = []portfolio.Project{{Title: "5G Network Security Compliance Initiative"}}

	items, err := f.useCase().ListProjects(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "5G Network Security Compliance Initiative", items[0].Title)
}
