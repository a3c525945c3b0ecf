package database

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the subset of *mongo.Collection the handlers use.
// Handlers are constructed over this interface so tests can substitute
// an in-memory fake.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// DB owns the mongo client and exposes the application's collections.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the client, pings the deployment and returns the
// handle. The caller is responsible for calling Close on shutdown.
func Connect(ctx context.Context, uri, name string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to MongoDB")

	return &DB{client: client, db: client.Database(name)}, nil
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) {
	if err := d.client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
		return
	}
	log.Println("MongoDB connection closed")
}

func (d *DB) Users() Collection    { return d.db.Collection("users") }
func (d *DB) Shops() Collection    { return d.db.Collection("shop") }
func (d *DB) Products() Collection { return d.db.Collection("products") }
func (d *DB) Sales() Collection    { return d.db.Collection("sales") }
func (d *DB) Payments() Collection { return d.db.Collection("payments") }
