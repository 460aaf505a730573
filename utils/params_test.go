package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/discoverpt/discover-portugal-backend/apierror"
)

func limitContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/events?"+rawQuery, nil)
	return c
}

func TestParseLimit(t *testing.T) {
	t.Run("default when absent", func(t *testing.T) {
		limit, err := ParseLimit(limitContext(""), 50, 200)
		assert.NoError(t, err)
		assert.Equal(t, int64(50), limit)
	})

	t.Run("explicit value within bounds", func(t *testing.T) {
		limit, err := ParseLimit(limitContext("limit=120"), 50, 200)
		assert.NoError(t, err)
		assert.Equal(t, int64(120), limit)
	})

	t.Run("maximum is inclusive", func(t *testing.T) {
		limit, err := ParseLimit(limitContext("limit=300"), 100, 300)
		assert.NoError(t, err)
		assert.Equal(t, int64(300), limit)
	})

	tests := []struct {
		name  string
		query string
	}{
		{"zero rejected", "limit=0"},
		{"negative rejected", "limit=-5"},
		{"above maximum rejected", "limit=201"},
		{"non-integer rejected", "limit=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLimit(limitContext(tt.query), 50, 200)
			var apiErr *apierror.Error
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, apierror.Validation, apiErr.Kind)
		})
	}
}
