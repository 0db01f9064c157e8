package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/laybeentan/portfolio-api/pkg/apperror"
	"github.com/laybeentan/portfolio-api/pkg/logger"
)

// Collection names. This set is closed; repos never take free-form names.
const (
	CollectionProfiles           = "profiles"
	CollectionExperiences        = "experiences"
	CollectionSkills             = "skills"
	CollectionProjects           = "projects"
	CollectionCertifications     = "certifications"
	CollectionContactSubmissions = "contact_submissions"
	CollectionEducation          = "education"
)

// maxFetch caps every list query. There is no pagination cursor; callers
// needing more must narrow the filter.
const maxFetch = 1000

// Store wraps the database handle shared by the typed repositories. All
// operations surface driver failures as apperror.ErrStorage and never retry.
type Store struct {
	db  *mongo.Database
	log logger.Logger
}

func NewStore(db *mongo.Database, log logger.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return apperror.NewStorage("database ping failed", err)
	}
	return nil
}

// insertOne writes doc and reads the stored document back, so callers see
// exactly what the store holds, generated id included.
func insertOne[T any](ctx context.Context, s *Store, collection string, doc *T) (*T, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("insert into %s failed", collection), err)
	}

	var stored T
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&stored)
	if err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("read back inserted document from %s failed", collection), err)
	}
	return &stored, nil
}

// findByID returns (nil, nil) when id is malformed or matches nothing.
func findByID[T any](ctx context.Context, s *Store, collection, id string) (*T, error) {
	oid, ok := DecodeID(id)
	if !ok {
		return nil, nil
	}

	var doc T
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("find by id in %s failed", collection), err)
	}
	return &doc, nil
}

func find[T any](ctx context.Context, s *Store, collection string, filter bson.M, sortField string, ascending bool) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().SetLimit(maxFetch)
	if sortField != "" {
		order := 1
		if !ascending {
			order = -1
		}
		opts.SetSort(bson.D{{Key: sortField, Value: order}})
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("find in %s failed", collection), err)
	}

	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("decode documents from %s failed", collection), err)
	}
	return docs, nil
}

// findByProfile lists documents owned by a profile, ascending in sortField.
// A malformed profileID yields an empty result, not an error.
func findByProfile[T any](ctx context.Context, s *Store, collection, profileID, sortField string) ([]T, error) {
	oid, ok := DecodeID(profileID)
	if !ok {
		return []T{}, nil
	}
	if sortField == "" {
		sortField = "order"
	}
	return find[T](ctx, s, collection, bson.M{"profile_id": oid}, sortField, true)
}

// updateByID merges patch into the document. The updated document comes back
// only when at least one field actually changed; (nil, nil) covers both a
// malformed id and a no-op patch.
func updateByID[T any](ctx context.Context, s *Store, collection, id string, patch bson.M) (*T, error) {
	oid, ok := DecodeID(id)
	if !ok {
		return nil, nil
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": patch})
	if err != nil {
		return nil, apperror.NewStorage(fmt.Sprintf("update in %s failed", collection), err)
	}
	if res.ModifiedCount == 0 {
		return nil, nil
	}
	return findByID[T](ctx, s, collection, id)
}

func deleteByID(ctx context.Context, s *Store, collection, id string) (bool, error) {
	oid, ok := DecodeID(id)
	if !ok {
		return false, nil
	}

	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, apperror.NewStorage(fmt.Sprintf("delete from %s failed", collection), err)
	}
	return res.DeletedCount > 0, nil
}

func count(ctx context.Context, s *Store, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}

	n, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperror.NewStorage(fmt.Sprintf("count in %s failed", collection), err)
	}
	return n, nil
}
