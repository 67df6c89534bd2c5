package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"society-billing-service/services"
	"society-billing-service/services/container"
)

// HealthCheckController reports service liveness and dependency status
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller instance
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping is the liveness endpoint
func (h *HealthCheckController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Health reports database and cache reachability
// @Summary      Health check
// @Description  Reports reachability of the database and the shared cache
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthCheckController) Health(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	dbStatus := "up"
	if db := h.Container.GetDB(); db != nil {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "down"
		}
	} else {
		dbStatus = "down"
	}

	redisStatus := "up"
	redisService := h.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(ctx); err != nil {
		redisStatus = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"checks": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}

// HandleHealthFunc returns a gin handler dispatching health requests
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	controller := NewHealthCheckController(container)
	return func(ctx *gin.Context) {
		switch method {
		case "ping":
			controller.Ping(ctx)
		case "health":
			controller.Health(ctx)
		default:
			controller.Ping(ctx)
		}
	}
}
