package api

import (
	"net/http"

	"storefront/internal/infra"

	"github.com/gin-gonic/gin"
)

// handleQueryError maps read-side repository errors onto HTTP statuses.
func handleQueryError(c *gin.Context, err error, notFoundMsg string) {
	if infra.IsKind(err, infra.KindNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
