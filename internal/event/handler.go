package event

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

// CreateEvent - POST /api/events
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
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

// ListEvents - GET /api/events?category=&city=&q=&limit=
func (h *Handler) ListEvents(c *gin.Context) {
	limit, err := utils.ParseLimit(c, 50, 200)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	f := ListFilter{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Query:    c.Query("q"),
	}

	docs, err := h.Service.List(c.Request.Context(), f, limit)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// GetEvent - GET /api/events/:id
func (h *Handler) GetEvent(c *gin.Context) {
	doc, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
