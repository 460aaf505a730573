package overview

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverpt/discover-portugal-backend/apierror"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// MyOverview - GET /api/my?email=
func (h *Handler) MyOverview(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		apierror.Respond(c, apierror.New(apierror.Validation, "email query parameter is required"))
		return
	}

	res, err := h.Service.Build(c.Request.Context(), email)
	if err != nil {
		apierror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
