package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/event-planner-api/internal/application"
	handlers "github.com/oksasatya/event-planner-api/internal/interface/http"
	"github.com/oksasatya/event-planner-api/internal/interface/middleware"
)

// AuthModule wires registration and login.
// Public: POST /auth/register, POST /auth/token
// Protected: GET /auth/me
type AuthModule struct {
	Handler *handlers.AuthHandler
	Users   *application.UserService
	Redis   *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, users *application.UserService, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, Users: users, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/token", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Users))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
