package rsvp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverpt/discover-portugal-backend/apierror"
	"github.com/discoverpt/discover-portugal-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// CreateRsvp - POST /api/rsvps
func (h *Handler) CreateRsvp(c *gin.Context) {
	var req CreateRsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.Respond(c, apierror.FromBinding(err))
		return
	}

	id, err := h.Service.Create(c.Request.Context(), &req)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"_id": id})
}

// ListRsvps - GET /api/rsvps?user_email=&event_id=&limit=
func (h *Handler) ListRsvps(c *gin.Context) {
	limit, err := utils.ParseLimit(c, 100, 300)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	f := ListFilter{
		UserEmail: c.Query("user_email"),
		EventID:   c.Query("event_id"),
	}

	docs, err := h.Service.List(c.Request.Context(), f, limit)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}
