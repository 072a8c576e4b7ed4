package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookably/appointment-api/internal/middleware"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func actorID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}
