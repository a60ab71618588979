package handlers

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory Store used by the handler tests. It
// understands the two filter shapes the handlers build: case-insensitive
// city regex and featured equality.
type fakeStore struct {
	docs        map[string][]bson.M
	createErr   error
	findErr     error
	collections []string
	namesErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string][]bson.M{}}
}

func (f *fakeStore) Available() bool { return true }

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	f.docs[collection] = append(f.docs[collection], m)
	return id.Hex(), nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []bson.M
	for _, doc := range f.docs[collection] {
		if !matchesFilter(doc, filter) {
			continue
		}
		out = append(out, doc)
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) CollectionNames(ctx context.Context) ([]string, error) {
	if f.namesErr != nil {
		return nil, f.namesErr
	}
	return f.collections, nil
}

func matchesFilter(doc bson.M, filter bson.M) bool {
	for key, want := range filter {
		switch cond := want.(type) {
		case bson.M:
			pattern, _ := cond["$regex"].(string)
			value, ok := doc[key].(string)
			if !ok || !regexp.MustCompile("(?i)"+pattern).MatchString(value) {
				return false
			}
		default:
			if doc[key] != want {
				return false
			}
		}
	}
	return true
}
