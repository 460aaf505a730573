package rsvp

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rsvp is the stored document shape for the "rsvp" collection. EventID is
// a soft reference: it is expected to name an event's identifier, but the
// target's existence is never checked at write time.
type Rsvp struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	EventID   string             `bson:"event_id" json:"event_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	UserEmail string             `bson:"user_email" json:"user_email"`
	Status    string             `bson:"status" json:"status"`
}

// CreateRsvpRequest - POST /api/rsvps body
type CreateRsvpRequest struct {
	EventID   string `json:"event_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	UserEmail string `json:"user_email" binding:"required,email"`
	Status    string `json:"status"`
}

// ListFilter carries the optional query filters of GET /api/rsvps.
type ListFilter struct {
	UserEmail string
	EventID   string
}

// DefaultStatus is applied when an RSVP is created without one. Status is
// an open string, not an enum.
const DefaultStatus = "going"
