package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/event-planner-api/internal/application"
	handlers "github.com/oksasatya/event-planner-api/internal/interface/http"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
)

// UserModule wires profile routes, all behind bearer auth.
// GET /users/me, PUT /users/me, GET /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Users   *application.UserService
	Redis   *redis.Client
}

func NewUserModule(h *handlers.UserHandler, users *application.UserService, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, Users: users, Redis: rdb}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.BearerAuth(m.Users))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/me", m.Handler.GetMe)
		auth.PUT("/me", m.Handler.UpdateMe)
		auth.GET("/:id", m.Handler.GetByID)
	}
}
