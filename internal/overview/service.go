package overview

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/discoverpt/discover-portugal-backend/database"
	"github.com/discoverpt/discover-portugal-backend/internal/event"
	"github.com/discoverpt/discover-portugal-backend/internal/rsvp"
)

// Per-overview fetch caps, independent of the list endpoints' limits.
const (
	createdEventsLimit = 100
	rsvpsLimit         = 200
)

// Service assembles the personal overview: the events a user organizes
// and the RSVPs they made, each RSVP hydrated with its referenced event.
type Service struct {
	Events *event.Repository
	Rsvps  *rsvp.Repository
}

func NewService(events *event.Repository, rsvps *rsvp.Repository) *Service {
	return &Service{Events: events, Rsvps: rsvps}
}

// Result - GET /api/my response body
type Result struct {
	CreatedEvents []map[string]interface{} `json:"created_events"`
	Rsvps         []map[string]interface{} `json:"rsvps"`
}

// Build runs the three store queries (created events, RSVPs, referenced
// events) and joins them in memory.
func (s *Service) Build(ctx context.Context, email string) (*Result, error) {
	created, err := s.Events.ListByOrganizer(ctx, email, createdEventsLimit)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.Rsvps.ListByUserEmail(ctx, email, rsvpsLimit)
	if err != nil {
		return nil, err
	}

	referenced, err := s.Events.FindByIDs(ctx, collectEventIDs(rsvps))
	if err != nil {
		return nil, err
	}

	eventsByID := make(map[string]map[string]interface{}, len(referenced))
	for _, ev := range referenced {
		if id, ok := ev["_id"].(primitive.ObjectID); ok {
			eventsByID[id.Hex()] = database.Serialize(ev)
		}
	}

	res := &Result{
		CreatedEvents: make([]map[string]interface{}, 0, len(created)),
		Rsvps:         hydrate(rsvps, eventsByID),
	}
	for _, ev := range created {
		res.CreatedEvents = append(res.CreatedEvents, database.Serialize(ev))
	}
	return res, nil
}

// collectEventIDs gathers the well-formed event references. Malformed ids
// are skipped rather than failing the whole overview.
func collectEventIDs(rsvps []bson.M) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(rsvps))
	for _, r := range rsvps {
		raw, _ := r["event_id"].(string)
		if id, err := primitive.ObjectIDFromHex(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// hydrate serializes each RSVP and attaches its referenced event (or nil
// when the reference is malformed or dangling) under an "event" field.
func hydrate(rsvps []bson.M, eventsByID map[string]map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rsvps))
	for _, r := range rsvps {
		rd := database.Serialize(r)
		eventID, _ := r["event_id"].(string)
		if ev, ok := eventsByID[eventID]; ok {
			rd["event"] = ev
		} else {
			rd["event"] = nil
		}
		out = append(out, rd)
	}
	return out
}
