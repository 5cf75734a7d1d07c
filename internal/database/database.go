package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionProducts = "product"
	CollectionBanners  = "banner"

	opTimeout = 5 * time.Second
)

// ErrUnavailable is returned by every write and single-document read when the
// store was never connected.
var ErrUnavailable = errors.New("database not available")

func Connect(uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// Store is the single adapter handed to every handler. Built over a nil
// database it stays usable: list reads come back empty, everything else
// reports ErrUnavailable so the service can start without a live store.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrUnavailable
	}
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.db.Client().Ping(checkCtx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return []string{}, nil
	}
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.db.ListCollectionNames(opCtx, bson.M{})
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc interface{}) (primitive.ObjectID, error) {
	if !s.Available() {
		return primitive.NilObjectID, ErrUnavailable
	}
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(opCtx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

// Find returns up to limit raw documents in storage-native order. A limit of
// zero means no cap. Degraded mode yields an empty slice, not an error.
func (s *Store) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Available() {
		return []bson.M{}, nil
	}
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(opCtx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(opCtx)

	docs := make([]bson.M, 0)
	for cursor.Next(opCtx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}
		docs = append(docs, raw)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *Store) FindOne(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var raw bson.M
	err := s.db.Collection(collection).FindOne(opCtx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (s *Store) CountAll(ctx context.Context, collection string) (int64, error) {
	if !s.Available() {
		return 0, ErrUnavailable
	}
	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	return s.db.Collection(collection).CountDocuments(opCtx, bson.M{})
}
