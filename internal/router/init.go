package router

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/event-planner-api/internal/application"
	handlers "github.com/oksasatya/event-planner-api/internal/interface/http"
	"github.com/oksasatya/event-planner-api/internal/router/modules"
)

// Deps carries the constructed services into route wiring. Everything is
// injected explicitly; there is no process-wide singleton to reach into.
type Deps struct {
	Users  *application.UserService
	Events *application.EventService
	RSVPs  *application.RSVPService
	Redis  *redis.Client
	Logger *logrus.Logger
}

// InitModules builds all feature modules and registers them with the router
// registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(d.Users, d.Logger), d.Users, d.Redis))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(d.Users, d.Logger), d.Users, d.Redis))
	r.Add(modules.NewEventModule(handlers.NewEventHandler(d.Events, d.Logger), d.Users, d.Redis))
	r.Add(modules.NewRSVPModule(handlers.NewRSVPHandler(d.RSVPs, d.Logger), d.Users, d.Redis))
}
