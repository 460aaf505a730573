package rsvp

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/discoverpt/discover-portugal-backend/database"
)

type Repository struct {
	Store *database.Store
}

func NewRepository(store *database.Store) *Repository {
	return &Repository{Store: store}
}

func (r *Repository) Create(ctx context.Context, rv *Rsvp) (string, error) {
	return r.Store.Insert(ctx, database.CollectionRsvp, rv)
}

func (r *Repository) List(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	return r.Store.Query(ctx, database.CollectionRsvp, filter, limit)
}

// ListByUserEmail returns up to limit RSVPs made by the given email.
func (r *Repository) ListByUserEmail(ctx context.Context, email string, limit int64) ([]bson.M, error) {
	return r.Store.Query(ctx, database.CollectionRsvp, bson.M{"user_email": email}, limit)
}
