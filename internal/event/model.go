package event

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is embedded in an Event; it has no identity of its own.
type Location struct {
	Name    string  `bson:"name,omitempty" json:"name,omitempty"`
	Address string  `bson:"address,omitempty" json:"address,omitempty"`
	City    string  `bson:"city,omitempty" json:"city,omitempty"`
	Lat     float64 `bson:"lat" json:"lat"`
	Lng     float64 `bson:"lng" json:"lng"`
}

// Event is the stored document shape for the "event" collection. The
// identifier and created_at stamp are assigned at insert time.
type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Category       string             `bson:"category" json:"category"`
	StartTime      time.Time          `bson:"start_time" json:"start_time"`
	EndTime        *time.Time         `bson:"end_time,omitempty" json:"end_time,omitempty"`
	Location       Location           `bson:"location" json:"location"`
	ImageURL       string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	OrganizerName  string             `bson:"organizer_name" json:"organizer_name"`
	OrganizerEmail string             `bson:"organizer_email" json:"organizer_email"`
}

// LocationPayload mirrors Location for request binding. Lat and Lng are
// pointers so that a present 0.0 coordinate passes the required check.
type LocationPayload struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Lat     *float64 `json:"lat" binding:"required"`
	Lng     *float64 `json:"lng" binding:"required"`
}

// CreateEventRequest - POST /api/events body
type CreateEventRequest struct {
	Title          string           `json:"title" binding:"required"`
	Description    string           `json:"description"`
	Category       string           `json:"category" binding:"required"`
	StartTime      time.Time        `json:"start_time" binding:"required"`
	EndTime        *time.Time       `json:"end_time"`
	Location       *LocationPayload `json:"location" binding:"required"`
	ImageURL       string           `json:"image_url" binding:"omitempty,url"`
	OrganizerName  string           `json:"organizer_name" binding:"required"`
	OrganizerEmail string           `json:"organizer_email" binding:"required,email"`
}

// ListFilter carries the optional query filters of GET /api/events.
type ListFilter struct {
	Category string
	City     string
	Query    string
}
