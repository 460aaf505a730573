package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/discoverpt/discover-portugal-backend/apierror"
	"github.com/discoverpt/discover-portugal-backend/database"
)

func TestBuildFilter(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, buildFilter(ListFilter{}))
	})

	t.Run("category and city are exact matches", func(t *testing.T) {
		filter := buildFilter(ListFilter{Category: "Food", City: "Porto"})
		assert.Equal(t, "Food", filter["category"])
		assert.Equal(t, "Porto", filter["location.city"])
	})

	t.Run("q becomes a case-insensitive title/description OR", func(t *testing.T) {
		filter := buildFilter(ListFilter{Query: "beach"})
		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 2)

		title := or[0].(bson.M)["title"].(primitive.Regex)
		assert.Equal(t, "beach", title.Pattern)
		assert.Equal(t, "i", title.Options)

		desc := or[1].(bson.M)["description"].(primitive.Regex)
		assert.Equal(t, "beach", desc.Pattern)
		assert.Equal(t, "i", desc.Options)
	})

	t.Run("q with regex metacharacters is matched literally", func(t *testing.T) {
		filter := buildFilter(ListFilter{Query: "wine+cheese"})
		or := filter["$or"].(bson.A)
		title := or[0].(bson.M)["title"].(primitive.Regex)
		assert.Equal(t, `wine\+cheese`, title.Pattern)
	})

	t.Run("text search combines with exact matches", func(t *testing.T) {
		filter := buildFilter(ListFilter{Category: "Outdoors", Query: "surf"})
		assert.Equal(t, "Outdoors", filter["category"])
		assert.Contains(t, filter, "$or")
	})
}

func TestFromRequest(t *testing.T) {
	lat, lng := 38.7223, -9.1393
	start := time.Date(2026, 9, 12, 21, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	req := &CreateEventRequest{
		Title:          "Fado Night",
		Category:       "Culture",
		StartTime:      start,
		EndTime:        &end,
		Location:       &LocationPayload{City: "Lisboa", Lat: &lat, Lng: &lng},
		OrganizerName:  "Maria",
		OrganizerEmail: "maria@example.pt",
	}

	e := fromRequest(req)
	assert.Equal(t, "Fado Night", e.Title)
	assert.Equal(t, "Culture", e.Category)
	assert.Equal(t, start, e.StartTime)
	assert.Equal(t, &end, e.EndTime)
	assert.Equal(t, "Lisboa", e.Location.City)
	assert.Equal(t, lat, e.Location.Lat)
	assert.Equal(t, lng, e.Location.Lng)
}

func TestFromRequestAcceptsEndBeforeStart(t *testing.T) {
	lat, lng := 0.0, 0.0
	start := time.Date(2026, 9, 12, 21, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)

	e := fromRequest(&CreateEventRequest{
		Title:     "Backwards",
		StartTime: start,
		EndTime:   &end,
		Location:  &LocationPayload{Lat: &lat, Lng: &lng},
	})
	assert.True(t, e.EndTime.Before(e.StartTime))
}

func TestGetByIDMalformedIdentifier(t *testing.T) {
	svc := NewService(NewRepository(database.NewStore(nil)))

	_, err := svc.GetByID(context.Background(), "not-an-object-id")

	var apiErr *apierror.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.MalformedID, apiErr.Kind)
}

func TestCreateWithoutDatabase(t *testing.T) {
	svc := NewService(NewRepository(database.NewStore(nil)))
	lat, lng := 38.7223, -9.1393

	_, err := svc.Create(context.Background(), &CreateEventRequest{
		Title:          "Fado Night",
		Category:       "Culture",
		StartTime:      time.Now(),
		Location:       &LocationPayload{Lat: &lat, Lng: &lng},
		OrganizerName:  "Maria",
		OrganizerEmail: "maria@example.pt",
	})

	var apiErr *apierror.Error
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.NotConfigured, apiErr.Kind)
}
