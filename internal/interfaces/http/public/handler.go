package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/gurume-club-services/api/internal/infrastructure/media"
	publicapp "github.com/sngm3741/gurume-club-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger           *log.Logger
	restaurantQuery  publicapp.RestaurantQueryService
	commentCommands  publicapp.CommentCommandService
	relationCommands publicapp.RelationCommandService
	users            publicapp.UserService
	uploader         media.Uploader
	jwtSecret        []byte
	jwtIssuer        string
	jwtAudience      string
	tokenTTL         time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger           *log.Logger
	RestaurantQuery  publicapp.RestaurantQueryService
	CommentCommands  publicapp.CommentCommandService
	RelationCommands publicapp.RelationCommandService
	Users            publicapp.UserService
	Uploader         media.Uploader
	JWTSecret        []byte
	JWTIssuer        string
	JWTAudience      string
	TokenTTL         time.Duration
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:           cfg.Logger,
		restaurantQuery:  cfg.RestaurantQuery,
		commentCommands:  cfg.CommentCommands,
		relationCommands: cfg.RelationCommands,
		users:            cfg.Users,
		uploader:         cfg.Uploader,
		jwtSecret:        cfg.JWTSecret,
		jwtIssuer:        cfg.JWTIssuer,
		jwtAudience:      cfg.JWTAudience,
		tokenTTL:         cfg.TokenTTL,
	}
}

// Register mounts all public routes onto the router. Listing routes run
// through optionalAuth so anonymous visitors get empty membership flags;
// write routes require a verified token.
func (h *Handler) Register(r chi.Router, authMiddleware, optionalAuthMiddleware func(http.Handler) http.Handler) {
	r.With(optionalAuthMiddleware).Get("/restaurants", h.restaurantListHandler())
	r.Get("/restaurants/feeds", h.restaurantFeedsHandler())
	r.With(optionalAuthMiddleware).Get("/restaurants/top", h.restaurantTopHandler())
	r.With(optionalAuthMiddleware).Get("/restaurants/{id}", h.restaurantDetailHandler())
	r.Get("/restaurants/{id}/dashboard", h.restaurantDashboardHandler())

	r.Post("/signup", h.signUpHandler())
	r.Post("/signin", h.signInHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())

	r.With(optionalAuthMiddleware).Get("/users/top", h.userTopHandler())
	r.Get("/users/{id}", h.userProfileHandler())
	r.With(authMiddleware).Put("/users/{id}", h.userUpdateHandler())

	r.With(authMiddleware).Post("/comments", h.commentCreateHandler())
	r.With(authMiddleware).Delete("/comments/{id}", h.commentDeleteHandler())

	r.With(authMiddleware).Post("/favorite/{restaurantId}", h.favoriteAddHandler())
	r.With(authMiddleware).Delete("/favorite/{restaurantId}", h.favoriteRemoveHandler())
	r.With(authMiddleware).Post("/like/{restaurantId}", h.likeAddHandler())
	r.With(authMiddleware).Delete("/like/{restaurantId}", h.likeRemoveHandler())
	r.With(authMiddleware).Post("/following/{userId}", h.followAddHandler())
	r.With(authMiddleware).Delete("/following/{userId}", h.followRemoveHandler())
}
