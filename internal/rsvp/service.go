package rsvp

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/discoverpt/discover-portugal-backend/database"
)

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// Create inserts a validated RSVP and returns its new identifier. The
// referenced event is not checked for existence.
func (s *Service) Create(ctx context.Context, req *CreateRsvpRequest) (string, error) {
	return s.Repo.Create(ctx, fromRequest(req))
}

// fromRequest maps a bound request onto the stored document shape,
// applying the status default.
func fromRequest(req *CreateRsvpRequest) *Rsvp {
	rv := &Rsvp{
		EventID:   req.EventID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Status:    req.Status,
	}
	if rv.Status == "" {
		rv.Status = DefaultStatus
	}
	return rv
}

// List returns up to limit serialized RSVPs matching the filter.
func (s *Service) List(ctx context.Context, f ListFilter, limit int64) ([]map[string]interface{}, error) {
	docs, err := s.Repo.List(ctx, buildFilter(f), limit)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, database.Serialize(d))
	}
	return out, nil
}

// buildFilter translates optional list parameters into a store filter.
// Both fields are exact matches.
func buildFilter(f ListFilter) bson.M {
	filter := bson.M{}
	if f.UserEmail != "" {
		filter["user_email"] = f.UserEmail
	}
	if f.EventID != "" {
		filter["event_id"] = f.EventID
	}
	return filter
}
