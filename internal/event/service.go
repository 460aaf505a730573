package event

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/discoverpt/discover-portugal-backend/apierror"
	"github.com/discoverpt/discover-portugal-backend/database"
)

type Service struct {
	Repo *Repository
}

func NewService(r *Repository) *Service {
	return &Service{Repo: r}
}

// Create inserts a validated event and returns its new identifier.
func (s *Service) Create(ctx context.Context, req *CreateEventRequest) (string, error) {
	return s.Repo.Create(ctx, fromRequest(req))
}

// fromRequest maps a bound request onto the stored document shape. An
// end_time earlier than start_time is accepted; rejecting it would need
// a product decision first.
func fromRequest(req *CreateEventRequest) *Event {
	e := &Event{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		ImageURL:       req.ImageURL,
		OrganizerName:  req.OrganizerName,
		OrganizerEmail: req.OrganizerEmail,
	}
	if req.Location != nil {
		e.Location = Location{
			Name:    req.Location.Name,
			Address: req.Location.Address,
			City:    req.Location.City,
			Lat:     *req.Location.Lat,
			Lng:     *req.Location.Lng,
		}
	}
	return e
}

// List returns up to limit serialized events matching the filter.
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

// GetByID looks up a single serialized event.
func (s *Service) GetByID(ctx context.Context, rawID string) (map[string]interface{}, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, apierror.Newf(apierror.MalformedID, "invalid event id %q", rawID)
	}
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return database.Serialize(doc), nil
}

// buildFilter translates optional list parameters into a store filter.
// category and city are exact matches (city lives inside the embedded
// location document); q is a case-insensitive substring match against
// title or description, with the needle treated literally.
func buildFilter(f ListFilter) bson.M {
	filter := bson.M{}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.City != "" {
		filter["location.city"] = f.City
	}
	if f.Query != "" {
		pattern := regexp.QuoteMeta(f.Query)
		filter["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}
	return filter
}
