package authhandlers

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	authdomain "github.com/fantakl/votes-admin/app/modules/auth/domain"
	authjwt "github.com/fantakl/votes-admin/app/modules/auth/infrastructure/jwt"
	"github.com/fantakl/votes-admin/pkg/apperrors"
	"github.com/fantakl/votes-admin/pkg/attr"
	"github.com/fantakl/votes-admin/pkg/httpx"
)

// RateLimitMiddleware answers 429 once a client address runs out of tokens.
func RateLimitMiddleware(limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				client = r.RemoteAddr
			}

			if !limiter.Allow(client) {
				httpx.WriteJSON(w, http.StatusTooManyRequests, httpx.ErrorResponse{Error: http.StatusText(http.StatusTooManyRequests)})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware sets CORS headers for the configured origins.
// When allowedOrigins is empty, no CORS headers are added.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := origins[origin]; ok {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-Id")
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type claimsKey struct{}

// ClaimsFromContext returns the claims stored by AdminMiddleware.
func ClaimsFromContext(ctx context.Context) (*authdomain.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*authdomain.Claims)
	return c, ok
}

// AdminMiddleware requires an "Authorization: Bearer" token carrying the
// admin role. A missing or invalid token is 401, a valid token with another
// role is 403.
func AdminMiddleware(provider authjwt.Provider, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				httpx.WriteError(w, r, logger, &apperrors.NotAuthorizedError{Reason: "missing bearer token"})
				return
			}

			claims, err := provider.ValidateToken(token)
			if err != nil {
				reason := "invalid token"
				if errors.Is(err, authjwt.ErrExpiredToken) {
					reason = "token has expired"
				}
				logger.InfoContext(r.Context(), "Rejected admin token",
					attr.String("remote_addr", r.RemoteAddr),
					attr.Error(err),
				)
				httpx.WriteError(w, r, logger, &apperrors.NotAuthorizedError{Reason: reason})
				return
			}

			if !claims.Role.CanEditVotes() {
				err := &apperrors.NotAuthorizedError{Reason: "role " + claims.Role.String() + " may not edit votes"}
				httpx.WriteJSON(w, http.StatusForbidden, httpx.ErrorResponse{Error: err.Error()})
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
