package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/gurume-club-services/api/internal/admin/application"
	"github.com/sngm3741/gurume-club-services/api/internal/infrastructure/media"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	restaurants adminapp.RestaurantService
	categories  adminapp.CategoryService
	users       adminapp.UserService
	uploader    media.Uploader
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Restaurants adminapp.RestaurantService
	Categories  adminapp.CategoryService
	Users       adminapp.UserService
	Uploader    media.Uploader
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		restaurants: cfg.Restaurants,
		categories:  cfg.Categories,
		users:       cfg.Users,
		uploader:    cfg.Uploader,
	}
}

// Register mounts all admin routes onto the router. The caller guards the
// whole subtree with the admin middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/restaurants", h.restaurantListHandler())
	r.Post("/restaurants", h.restaurantCreateHandler())
	r.Get("/restaurants/{id}", h.restaurantDetailHandler())
	r.Put("/restaurants/{id}", h.restaurantUpdateHandler())
	r.Delete("/restaurants/{id}", h.restaurantDeleteHandler())

	r.Get("/categories", h.categoryListHandler())
	r.Post("/categories", h.categoryCreateHandler())
	r.Put("/categories/{id}", h.categoryUpdateHandler())
	r.Delete("/categories/{id}", h.categoryDeleteHandler())

	r.Get("/users", h.userListHandler())
	r.Patch("/users/{id}", h.userToggleAdminHandler())
}
