package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// New admin API router yig'ish. Token bo'sh bo'lmasa hamma /api yo'llari
// Authorization header orqali himoyalanadi.
func New(ticketHandler *TicketHandler, token string) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", Health)

	api := r.Group("/api")
	if token != "" {
		api.Use(authMiddleware(token))
	}
	{
		api.GET("/tickets", ticketHandler.List)
		api.GET("/tickets/:id", ticketHandler.Get)
		api.POST("/tickets/:id/status", ticketHandler.UpdateStatus)
		api.POST("/tickets/:id/reply", ticketHandler.Reply)
	}

	return r
}

// Health servis holati
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func authMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
