package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Registrar is implemented by every handler; each one mounts its own routes
// under the shared /api/v1 group.
type Registrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func Setup(router *gin.Engine, handlers ...Registrar) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
}
