package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/discoverpt/discover-portugal-backend/apierror"
)

// ParseLimit reads the "limit" query parameter, applying def when absent
// and rejecting values outside [1, max].
func ParseLimit(c *gin.Context, def, max int64) (int64, error) {
	raw := c.Query("limit")
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.Newf(apierror.Validation, "limit: %q is not an integer", raw)
	}
	if limit < 1 || limit > max {
		return 0, apierror.Newf(apierror.Validation, "limit: must be between 1 and %d", max)
	}
	return limit, nil
}
