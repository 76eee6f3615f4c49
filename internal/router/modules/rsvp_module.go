package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/event-planner-api/internal/application"
	handlers "github.com/oksasatya/event-planner-api/internal/interface/http"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
)

// RSVPModule wires RSVP routes, all behind bearer auth.
type RSVPModule struct {
	Handler *handlers.RSVPHandler
	Users   *application.UserService
	Redis   *redis.Client
}

func NewRSVPModule(h *handlers.RSVPHandler, users *application.UserService, rdb *redis.Client) *RSVPModule {
	return &RSVPModule{Handler: h, Users: users, Redis: rdb}
}

func (m *RSVPModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/rsvps")
	auth.Use(middleware.BearerAuth(m.Users))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.GET("/event/:event_id", m.Handler.ListByEvent)
		auth.GET("/user/me", m.Handler.ListMine)
	}
}
