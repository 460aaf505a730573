package event

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/discoverpt/discover-portugal-backend/database"
)

type Repository struct {
	Store *database.Store
}

func NewRepository(store *database.Store) *Repository {
	return &Repository{Store: store}
}

func (r *Repository) Create(ctx context.Context, e *Event) (string, error) {
	return r.Store.Insert(ctx, database.CollectionEvent, e)
}

func (r *Repository) List(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	return r.Store.Query(ctx, database.CollectionEvent, filter, limit)
}

func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return r.Store.FindByID(ctx, database.CollectionEvent, id)
}

// FindByIDs batch-fetches the events with the given identifiers.
func (r *Repository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]bson.M, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.Store.Query(ctx, database.CollectionEvent, bson.M{"_id": bson.M{"$in": ids}}, int64(len(ids)))
}

// ListByOrganizer returns up to limit events organized by the given email.
func (r *Repository) ListByOrganizer(ctx context.Context, email string, limit int64) ([]bson.M, error) {
	return r.Store.Query(ctx, database.CollectionEvent, bson.M{"organizer_email": email}, limit)
}
