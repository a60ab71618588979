package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStoreUnavailable(t *testing.T) {
	store := New(nil)
	assert.False(t, store.Available())

	_, err := store.CreateDocument(context.Background(), "property", bson.M{"title": "x"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.GetDocuments(context.Background(), "property", bson.M{}, 50)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.CollectionNames(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
