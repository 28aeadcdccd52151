package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary  Liveness check
// @Tags     ping
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "pong"})
}
