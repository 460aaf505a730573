package apierror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation maps to 400", New(Validation, "bad"), http.StatusBadRequest},
		{"malformed id maps to 400", New(MalformedID, "bad id"), http.StatusBadRequest},
		{"not found maps to 404", New(NotFound, "missing"), http.StatusNotFound},
		{"not configured maps to 500", New(NotConfigured, "no db"), http.StatusInternalServerError},
		{"storage maps to 502", New(Storage, "down"), http.StatusBadGateway},
		{"untagged error maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR", Validation.String())
	assert.Equal(t, "NOT_FOUND", NotFound.String())
	assert.Equal(t, "STORAGE_ERROR", Storage.String())
	assert.Equal(t, "MALFORMED_IDENTIFIER", MalformedID.String())
	assert.Equal(t, "NOT_CONFIGURED", NotConfigured.String())
}

func TestFromBinding(t *testing.T) {
	type payload struct {
		Title string `binding:"required"`
		Email string `binding:"required,email"`
	}

	v := validator.New()
	v.SetTagName("binding")

	t.Run("field paths and rules end up in the detail", func(t *testing.T) {
		err := v.Struct(payload{Email: "not-an-email"})
		apiErr := FromBinding(err)
		assert.Equal(t, Validation, apiErr.Kind)
		assert.Contains(t, apiErr.Detail, "Title: failed on 'required'")
		assert.Contains(t, apiErr.Detail, "Email: failed on 'email'")
	})

	t.Run("non-validator errors keep their message", func(t *testing.T) {
		apiErr := FromBinding(errors.New("unexpected EOF"))
		assert.Equal(t, Validation, apiErr.Kind)
		assert.Contains(t, apiErr.Detail, "unexpected EOF")
	})
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	Respond(c, New(NotFound, "Event not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Event not found"}`, rec.Body.String())
}
