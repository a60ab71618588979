package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the storage access contract the handlers depend on. The
// mongo-backed implementation lives in the storage package; tests swap in
// an in-memory one.
type Store interface {
	Available() bool
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	CollectionNames(ctx context.Context) ([]string, error)
}
