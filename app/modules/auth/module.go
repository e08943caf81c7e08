package auth

import (
	"context"
	"log/slog"
	"net/http"

	authhandlers "github.com/fantakl/votes-admin/app/modules/auth/infrastructure/handlers"
	authjwt "github.com/fantakl/votes-admin/app/modules/auth/infrastructure/jwt"
	"github.com/fantakl/votes-admin/config"
	"golang.org/x/time/rate"
)

// Module holds the HTTP guards of the admin API.
type Module struct {
	Provider authjwt.Provider
	limiter  *authhandlers.ClientLimiter
	cfg      config.HTTPConfig
	enabled  bool
	logger   *slog.Logger
}

// NewAuthModule builds the JWT provider and per-client limiter. Token checks are
// disabled when no secret is configured.
func NewAuthModule(ctx context.Context, cfg *config.Config, logger *slog.Logger) *Module {
	m := &Module{
		limiter: authhandlers.NewClientLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst),
		cfg:     cfg.HTTP,
		enabled: cfg.JWT.Secret != "",
		logger:  logger,
	}
	if m.enabled {
		m.Provider = authjwt.NewProvider(cfg.JWT.Secret)
	} else {
		logger.WarnContext(ctx, "JWT secret not configured, admin API is unauthenticated")
	}
	return m
}

// Middlewares returns the chain applied to /api, outermost first.
func (m *Module) Middlewares() []func(http.Handler) http.Handler {
	chain := []func(http.Handler) http.Handler{
		authhandlers.CORSMiddleware(m.cfg.AllowedOrigins),
		authhandlers.RateLimitMiddleware(m.limiter),
	}
	if m.enabled {
		chain = append(chain, authhandlers.AdminMiddleware(m.Provider, m.logger))
	}
	return chain
}
