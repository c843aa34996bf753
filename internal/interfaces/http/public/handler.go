package public

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sngm3741/shopfront/internal/assets"
	publicapp "github.com/sngm3741/shopfront/internal/public/application"
	"github.com/sngm3741/shopfront/internal/ui"
)

// Handler wires public page endpoints to application services.
type Handler struct {
	logger   *zap.Logger
	profiles publicapp.ProfileQueryService
	assets   assets.Resolver
	renderer *ui.Renderer
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger   *zap.Logger
	Profiles publicapp.ProfileQueryService
	Assets   assets.Resolver
	Renderer *ui.Renderer
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:   logger,
		profiles: cfg.Profiles,
		assets:   cfg.Assets,
		renderer: cfg.Renderer,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.homeHandler())
	r.Get("/shop", h.shopHandler())
	r.Get("/shop/{slug}", h.shopHandler())
}
