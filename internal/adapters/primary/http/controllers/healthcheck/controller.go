package healthcheckController

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/vitaliksandalik/chat-gpt-telegram-bot/internal/ports/storage"
)

type HealthCheckController struct {
	store storage.DocumentStore
	log   *slog.Logger
}

func New(store storage.DocumentStore, log *slog.Logger) *HealthCheckController {
	return &HealthCheckController{
		store: store,
		log:   log,
	}
}

func (c *HealthCheckController) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/ready", c.ready)
}

// health базовая проверка (всегда возвращает 200)
func (c *HealthCheckController) health(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status": "ok",
	})
}

// ready проверка готовности (проверяет доступность хранилища)
func (c *HealthCheckController) ready(ctx *gin.Context) {
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		c.log.Error("storage not ready", "error", err)
		ctx.JSON(503, gin.H{
			"status": "not ready",
			"error":  "storage unavailable",
		})
		return
	}

	ctx.JSON(200, gin.H{
		"status": "ready",
	})
}
