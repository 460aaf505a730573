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

	"github.com/discoverpt/discover-portugal-backend/apierror"
)

// Store is the document access layer: generic insert/query over named
// collections. A Store over a nil database is valid; every data operation
// on it reports a configuration error instead of panicking.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Configured() bool {
	return s != nil && s.db != nil
}

// Name returns the database name, or "" when unconfigured.
func (s *Store) Name() string {
	if !s.Configured() {
		return ""
	}
	return s.db.Name()
}

var errNotConfigured = apierror.New(apierror.NotConfigured, "database not configured")

// Insert stamps the document with a created_at timestamp, writes it and
// returns the newly assigned identifier as a hex string.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !s.Configured() {
		return "", errNotConfigured
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", apierror.Newf(apierror.Storage, "encode document: %v", err)
	}
	var d bson.M
	if err := bson.Unmarshal(raw, &d); err != nil {
		return "", apierror.Newf(apierror.Storage, "encode document: %v", err)
	}
	d["created_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).InsertOne(ctx, d)
	if err != nil {
		return "", apierror.Newf(apierror.Storage, "insert into %s: %v", collection, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", apierror.Newf(apierror.Storage, "unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// Query returns up to limit documents matching filter, in the store's
// natural order. No ordering is guaranteed.
func (s *Store) Query(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Configured() {
		return nil, errNotConfigured
	}
	if filter == nil {
		filter = bson.M{}
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, apierror.Newf(apierror.Storage, "query %s: %v", collection, err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, apierror.Newf(apierror.Storage, "decode document from %s: %v", collection, err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, apierror.Newf(apierror.Storage, "query %s: %v", collection, err)
	}
	return docs, nil
}

// FindByID looks up a single document by its identifier.
func (s *Store) FindByID(ctx context.Context, collection string, id primitive.ObjectID) (bson.M, error) {
	if !s.Configured() {
		return nil, errNotConfigured
	}

	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apierror.Newf(apierror.NotFound, "document %s not found in %s", id.Hex(), collection)
	}
	if err != nil {
		return nil, apierror.Newf(apierror.Storage, "lookup %s in %s: %v", id.Hex(), collection, err)
	}
	return doc, nil
}

// CollectionNames lists the collection names of the database, for the
// health check.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Configured() {
		return nil, errNotConfigured
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, apierror.Newf(apierror.Storage, "list collections: %v", err)
	}
	return names, nil
}

// Ping reports connectivity to the store.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Configured() {
		return errNotConfigured
	}
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return apierror.Newf(apierror.Storage, "ping: %v", err)
	}
	return nil
}
