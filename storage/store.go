package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned when no database connection is configured.
var ErrUnavailable = errors.New("storage not available")

// Store wraps the shared MongoDB database handle. The handle may be nil,
// in which case every endpoint degrades to its no-storage behavior.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// CreateDocument inserts a single document into the named collection and
// returns the store-assigned identifier.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

// GetDocuments returns up to limit documents matching filter, in store
// order. An empty or absent collection yields an empty result, not an
// error. Documents that fail to decode are skipped.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, cursor.Err()
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
