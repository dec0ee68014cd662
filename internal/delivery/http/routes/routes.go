package routes

import (
	"skilltrack/internal/database"
	"skilltrack/internal/delivery/http/handler"
	v1 "skilltrack/internal/delivery/http/routes/v1"
	"skilltrack/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	db    database.DB
	cache *cache.Redis
}

func NewRegistry(db database.DB, c *cache.Redis) *Registry {
	return &Registry{db: db, cache: c}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.db, r.cache).RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.db, r.cache)
}
