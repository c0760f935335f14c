package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Archive stores layout documents in MongoDB so hosts can look up
// previously computed layouts instead of re-packing identical inputs.
type Archive struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// document wraps a Layout with archive metadata.
type document struct {
	ID      string    `bson:"_id"`
	SavedAt time.Time `bson:"saved_at"`
	Layout  Layout    `bson:"layout"`
}

// NewArchive connects to MongoDB and verifies the connection.
// The archive writes into database/collection under the given URI.
func NewArchive(ctx context.Context, uri, database, collection string) (*Archive, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Archive{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Save stores a layout and returns its generated document ID.
func (a *Archive) Save(ctx context.Context, l Layout) (string, error) {
	doc := document{
		ID:      uuid.NewString(),
		SavedAt: time.Now().UTC(),
		Layout:  l,
	}
	if _, err := a.coll.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert layout: %w", err)
	}
	return doc.ID, nil
}

// Load retrieves a layout by document ID.
func (a *Archive) Load(ctx context.Context, id string) (Layout, error) {
	var doc document
	err := a.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Layout{}, fmt.Errorf("layout %s: not found", id)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("find layout: %w", err)
	}
	return doc.Layout, nil
}

// Close disconnects from MongoDB.
func (a *Archive) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
