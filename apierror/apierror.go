package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Kind tags an error with its place in the API error taxonomy.
type Kind int

const (
	Validation Kind = iota
	NotFound
	Storage
	MalformedID
	NotConfigured
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "VALIDATION_ERROR"
	case NotFound:
		return "NOT_FOUND"
	case Storage:
		return "STORAGE_ERROR"
	case MalformedID:
		return "MALFORMED_IDENTIFIER"
	case NotConfigured:
		return "NOT_CONFIGURED"
	}
	return "UNKNOWN"
}

type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// FromBinding converts a gin binding failure into a Validation error. For
// validator failures the detail lists each offending field path with the
// rule it broke; anything else (malformed JSON, wrong value types) keeps
// the underlying message.
func FromBinding(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			path := fe.Namespace()
			if i := strings.Index(path, "."); i >= 0 {
				path = path[i+1:]
			}
			parts = append(parts, fmt.Sprintf("%s: failed on '%s'", path, fe.Tag()))
		}
		return New(Validation, strings.Join(parts, "; "))
	}
	return New(Validation, "invalid request body: "+err.Error())
}

// StatusCode maps an error to its HTTP status. The original service
// collapsed storage failures into 400; the taxonomy splits them out so a
// store outage is distinguishable from a bad request.
func StatusCode(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case Validation, MalformedID:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case NotConfigured:
		return http.StatusInternalServerError
	case Storage:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// Respond writes the error as a {"detail": ...} JSON response.
func Respond(c *gin.Context, err error) {
	c.JSON(StatusCode(err), gin.H{"detail": err.Error()})
}
