package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection is an in-memory stand-in for database.Collection. It
// returns canned results and records the last filter/update/document it
// was called with.
type fakeCollection struct {
	findOneDoc   interface{}
	findOneErr   error
	findDocs     []interface{}
	findErr      error
	insertResult *mongo.InsertOneResult
	insertErr    error
	updateResult *mongo.UpdateResult
	updateErr    error
	deleteResult *mongo.DeleteResult
	deleteErr    error

	lastFilter   interface{}
	lastUpdate   interface{}
	lastInsert   interface{}
	lastUpserted bool
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	f.lastFilter = filter
	if f.findOneErr != nil {
		return mongo.NewSingleResultFromDocument(struct{}{}, f.findOneErr, nil)
	}
	return mongo.NewSingleResultFromDocument(f.findOneDoc, nil, nil)
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	return mongo.NewCursorFromDocuments(f.findDocs, nil, nil)
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.lastInsert = document
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if f.insertResult != nil {
		return f.insertResult, nil
	}
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.lastFilter = filter
	f.lastUpdate = update
	for _, opt := range opts {
		if opt != nil && opt.Upsert != nil && *opt.Upsert {
			f.lastUpserted = true
		}
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateResult != nil {
		return f.updateResult, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.lastFilter = filter
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if f.deleteResult != nil {
		return f.deleteResult, nil
	}
	return &mongo.DeleteResult{}, nil
}
