package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/laybeentan/portfolio-api/internal/domain/contact"
	"github.com/laybeentan/portfolio-api/internal/domain/portfolio"
	"github.com/laybeentan/portfolio-api/internal/domain/profile"
	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	mongoContainer *mongodb.MongoDBContainer
	client         *mongo.Client
	db             *mongo.Database
	store          *Store

	profileRepo    profile.Repository
	experienceRepo portfolio.ExperienceRepository
	skillRepo      portfolio.SkillRepository
	projectRepo    portfolio.ProjectRepository
	contactRepo    contact.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		s.T().Fatalf("Failed to start mongo container: %s", err)
	}
	s.mongoContainer = mongoContainer

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	client, err := mongo.Connect(ctx, mongoopts.Client().ApplyURI(uri))
	if err != nil {
		s.T().Fatalf("Failed to connect to mongo: %s", err)
	}
	s.client = client
	s.db = client.Database("portfolio_test")

	s.store = NewStore(s.db, logger.NewZapLogger("development"))
	s.profileRepo = NewMongoProfileRepo(s.store)
	s.experienceRepo = NewMongoExperienceRepo(s.store)
	s.skillRepo = NewMongoSkillRepo(s.store)
	s.projectRepo = NewMongoProjectRepo(s.store)
	s.contactRepo = NewMongoContactRepo(s.store)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()
	if s.client != nil {
		if err := s.client.Disconnect(ctx); err != nil {
			s.T().Logf("Failed to disconnect mongo client: %s", err)
		}
	}
	if s.mongoContainer != nil {
		if err := s.mongoContainer.Terminate(ctx); err != nil {
			s.T().Fatalf("Failed to terminate mongo container: %s", err)
		}
	}
}

func (s *RepoIntegrationTestSuite) SetupTest() {
	if err := s.db.Drop(context.Background()); err != nil {
		s.T().Fatalf("Failed to reset test database: %s", err)
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) seedProfile() *profile.Profile {
	created, err := s.profileRepo.Create(context.Background(), &profile.Profile{
		Name:            "Lay Been Tan",
		Title:           "Network Security & Compliance Leader",
		YearsExperience: 31,
	})
	s.Require().NoError(err)
	return created
}

func (s *RepoIntegrationTestSuite) Test_Ping() {
	s.NoError(s.store.Ping(context.Background()))
}

func (s *RepoIntegrationTestSuite) Test_CreateProfile_AssignsIDAndTimestamps() {
	created := s.seedProfile()

	s.False(created.ID.IsZero())
	s.False(created.CreatedAt.IsZero())
	s.False(created.UpdatedAt.IsZero())
	s.Equal("Lay Been Tan", created.Name)
}

func (s *RepoIntegrationTestSuite) Test_GetSingleton_NilWhenEmpty() {
	p, err := s.profileRepo.GetSingleton(context.Background())

	s.NoError(err)
	s.Nil(p)
}

func (s *RepoIntegrationTestSuite) Test_GetSingleton_ReturnsTheOneProfile() {
	created := s.seedProfile()

	p, err := s.profileRepo.GetSingleton(context.Background())

	s.NoError(err)
	s.Require().NotNil(p)
	s.Equal(created.ID, p.ID)
}

func (s *RepoIntegrationTestSuite) Test_GetSingleton_ErrorsOnDuplicateProfiles() {
	s.seedProfile()
	_, err := s.profileRepo.Create(context.Background(), &profile.Profile{Name: "Duplicate"})
	s.Require().NoError(err)

	p, err := s.profileRepo.GetSingleton(context.Background())

	s.Nil(p)
	s.Require().Error(err)
	s.True(errors.Is(err, apperror.ErrInternal))
}

func (s *RepoIntegrationTestSuite) Test_ListByProfile_OrderAscending() {
	owner := s.seedProfile()
	ctx := context.Background()

	for _, e := range []portfolio.Experience{
		{ProfileID: owner.ID, Company: "Alcatel Canada", Order: 2},
		{ProfileID: owner.ID, Company: "Nokia", Order: 1},
		{ProfileID: owner.ID, Company: "Positron Fiber Optics", Order: 3},
	} {
		entry := e
		_, err := s.experienceRepo.Create(ctx, &entry)
		s.Require().NoError(err)
	}

	items, err := s.experienceRepo.ListByProfile(ctx, owner.ID.Hex())

	s.Require().NoError(err)
	s.Require().Len(items, 3)
	s.Equal("Nokia", items[0].Company)
	s.Equal("Alcatel Canada", items[1].Company)
	s.Equal("Positron Fiber Optics", items[2].Company)
}

func (s *RepoIntegrationTestSuite) Test_ListByProfile_ScopedToOwner() {
	owner := s.seedProfile()
	ctx := context.Background()

	_, err := s.skillRepo.Create(ctx, &portfolio.Skill{ProfileID: owner.ID, Name: "Risk Assessment", Order: 1})
	s.Require().NoError(err)

	other, err := s.profileRepo.Create(ctx, &profile.Profile{Name: "Someone Else"})
	s.Require().NoError(err)
	_, err = s.skillRepo.Create(ctx, &portfolio.Skill{ProfileID: other.ID, Name: "Unrelated", Order: 1})
	s.Require().NoError(err)

	items, err := s.skillRepo.ListByProfile(ctx, owner.ID.Hex())

	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Risk Assessment", items[0].Name)
}

func (s *RepoIntegrationTestSuite) Test_ListByProfile_MalformedIDYieldsEmpty() {
	items, err := s.experienceRepo.ListByProfile(context.Background(), "not-an-id")

	s.NoError(err)
	s.NotNil(items)
	s.Empty(items)
}

func (s *RepoIntegrationTestSuite) Test_CountByProfile() {
	owner := s.seedProfile()
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		_, err := s.projectRepo.Create(ctx, &portfolio.Project{ProfileID: owner.ID, Title: "Project", Order: i})
		s.Require().NoError(err)
	}

	n, err := s.projectRepo.CountByProfile(ctx, owner.ID.Hex())
	s.NoError(err)
	s.Equal(int64(2), n)

	n, err = s.projectRepo.CountByProfile(ctx, "bogus")
	s.NoError(err)
	s.Zero(n)
}

func (s *RepoIntegrationTestSuite) Test_FindByID_RoundTrip() {
	owner := s.seedProfile()
	ctx := context.Background()

	created, err := s.skillRepo.Create(ctx, &portfolio.Skill{ProfileID: owner.ID, Name: "ISO 27001", Proficiency: 90, Order: 1})
	s.Require().NoError(err)

	found, err := findByID[portfolio.Skill](ctx, s.store, CollectionSkills, created.ID.Hex())
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("ISO 27001", found.Name)

	missing, err := findByID[portfolio.Skill](ctx, s.store, CollectionSkills, owner.ID.Hex())
	s.NoError(err)
	s.Nil(missing)

	malformed, err := findByID[portfolio.Skill](ctx, s.store, CollectionSkills, "zzz")
	s.NoError(err)
	s.Nil(malformed)
}

func (s *RepoIntegrationTestSuite) Test_UpdateByID() {
	owner := s.seedProfile()
	ctx := context.Background()

	created, err := s.skillRepo.Create(ctx, &portfolio.Skill{ProfileID: owner.ID, Name: "Firewall Management", Proficiency: 80, Order: 1})
	s.Require().NoError(err)

	updated, err := updateByID[portfolio.Skill](ctx, s.store, CollectionSkills, created.ID.Hex(), bson.M{"proficiency": 85})
	s.Require().NoError(err)
	s.Require().NotNil(updated)
	s.Equal(85, updated.Proficiency)

	// Same value again modifies nothing.
	noop, err := updateByID[portfolio.Skill](ctx, s.store, CollectionSkills, created.ID.Hex(), bson.M{"proficiency": 85})
	s.NoError(err)
	s.Nil(noop)

	bogus, err := updateByID[portfolio.Skill](ctx, s.store, CollectionSkills, "bogus", bson.M{"proficiency": 99})
	s.NoError(err)
	s.Nil(bogus)
}

func (s *RepoIntegrationTestSuite) Test_DeleteByID() {
	owner := s.seedProfile()
	ctx := context.Background()

	created, err := s.skillRepo.Create(ctx, &portfolio.Skill{ProfileID: owner.ID, Name: "Transient", Order: 1})
	s.Require().NoError(err)

	deleted, err := deleteByID(ctx, s.store, CollectionSkills, created.ID.Hex())
	s.NoError(err)
	s.True(deleted)

	deleted, err = deleteByID(ctx, s.store, CollectionSkills, created.ID.Hex())
	s.NoError(err)
	s.False(deleted)

	deleted, err = deleteByID(ctx, s.store, CollectionSkills, "bogus")
	s.NoError(err)
	s.False(deleted)
}

func (s *RepoIntegrationTestSuite) Test_CreateContactSubmission() {
	ctx := context.Background()

	created, err := s.contactRepo.Create(ctx, &contact.ContactSubmission{
		Name:        "Alex Rivera",
		Email:       "alex@example.com",
		Subject:     "Consulting inquiry",
		Message:     "Would love to discuss a security audit.",
		SubmittedAt: time.Now().UTC(),
		Status:      contact.StatusNew,
	})

	s.Require().NoError(err)
	s.False(created.ID.IsZero())
	s.Equal(contact.StatusNew, created.Status)
	s.WithinDuration(time.Now().UTC(), created.SubmittedAt, time.Minute)
}
