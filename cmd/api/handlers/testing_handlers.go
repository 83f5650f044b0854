package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/services"
)

// ClearAllDataHandler godoc
// @Summary      Wipe all data
// @Description  Testing only. Removes every blog, post, comment and user
// @Tags         testing
// @Success      204
// @Router       /testing/all-data [delete]
func ClearAllDataHandler(svc *services.TestingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ClearAll(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
