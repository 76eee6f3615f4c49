package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/event-planner-api/internal/application"
	handlers "github.com/oksasatya/event-planner-api/internal/interface/http"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
)

// EventModule wires event CRUD, all behind bearer auth.
type EventModule struct {
	Handler *handlers.EventHandler
	Users   *application.UserService
	Redis   *redis.Client
}

func NewEventModule(h *handlers.EventHandler, users *application.UserService, rdb *redis.Client) *EventModule {
	return &EventModule{Handler: h, Users: users, Redis: rdb}
}

func (m *EventModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/events")
	auth.Use(middleware.BearerAuth(m.Users))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
