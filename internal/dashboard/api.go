package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/marketops/missionctl/internal/tasks"
)

// registerTaskAPI mounts the JSON task endpoints used by the drawer script.
// Writes require the configured API key in X-Api-Key; with no key configured
// the whole write surface answers 503.
func registerTaskAPI(router *gin.Engine, d deps) {
	api := router.Group("/api")
	api.Use(requireAPIKey(d.apiKey))
	api.POST("/tasks", apiCreateTask(d))
	api.PATCH("/tasks/:id", apiUpdateTask(d))
	api.DELETE("/tasks/:id", apiDeleteTask(d))
}

func requireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "write access is not configured"})
			return
		}
		if c.GetHeader("X-Api-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
			return
		}
		c.Next()
	}
}

func apiCreateTask(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in tasks.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		task, err := tasks.Create(d.db, in)
		if err != nil {
			writeTaskError(c, d.log, err)
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func apiUpdateTask(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in tasks.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		task, err := tasks.Update(d.db, c.Param("id"), in)
		if err != nil {
			writeTaskError(c, d.log, err)
			return
		}
		c.JSON(http.StatusOK, task)
	}
}

func apiDeleteTask(d deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := tasks.Delete(d.db, c.Param("id")); err != nil {
			writeTaskError(c, d.log, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// writeTaskError maps task write-path failures onto HTTP statuses.
func writeTaskError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, tasks.ErrInvalidInput):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, tasks.ErrNoDatabase):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Error("task write failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
