package handlers

import (
	"net/http"
	"time"

	"matchday/internal/utils"
	"matchday/pkg/cache"
	"matchday/pkg/database"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db    *database.MongoDB
	cache *cache.RedisCache
	start time.Time
}

func NewHealthHandler(db *database.MongoDB, redisCache *cache.RedisCache) *HealthHandler {
	return &HealthHandler{db: db, cache: redisCache, start: time.Now()}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	status := http.StatusOK
	checks := gin.H{
		"database": "ok",
		"cache":    "ok",
	}

	if err := h.db.Ping(); err != nil {
		checks["database"] = "unreachable"
		status = http.StatusServiceUnavailable
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			checks["cache"] = "unreachable"
		}
	} else {
		checks["cache"] = "disabled"
	}

	c.JSON(status, utils.APIResponse{
		Success: status == http.StatusOK,
		Data: gin.H{
			"service": utils.AppName,
			"version": utils.AppVersion,
			"uptime":  time.Since(h.start).String(),
			"checks":  checks,
		},
	})
}
