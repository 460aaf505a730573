package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverpt/discover-portugal-backend/config"
	"github.com/discoverpt/discover-portugal-backend/database"
)

type Handler struct {
	Store *database.Store
	Cfg   *config.Config
}

func NewHandler(store *database.Store, cfg *config.Config) *Handler {
	return &Handler{Store: store, Cfg: cfg}
}

// Root - GET /
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Discover Portugal API is running"})
}

// Hello - GET /api/hello
func (h *Handler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Olá from Discover Portugal backend!"})
}

// TestDatabase - GET /test
// Always answers 200: every store problem is folded into a status string
// instead of an error response.
func (h *Handler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Store.Configured() {
		response["database"] = "✅ Available"
		if h.Cfg.DatabaseURL != "" {
			response["database_url"] = "✅ Set"
		} else {
			response["database_url"] = "❌ Not Set"
		}
		response["database_name"] = h.Store.Name()
		response["connection_status"] = "Connected"

		names, err := h.Store.CollectionNames(c.Request.Context())
		if err != nil {
			msg := err.Error()
			if len(msg) > 50 {
				msg = msg[:50]
			}
			response["database"] = "⚠️ Connected but Error: " + msg
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			response["collections"] = names
			response["database"] = "✅ Connected & Working"
		}
	}

	c.JSON(http.StatusOK, response)
}
