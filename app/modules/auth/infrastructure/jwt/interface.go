package authjwt

import (
	"time"

	authdomain "github.com/fantakl/votes-admin/app/modules/auth/domain"
)

// Provider defines the interface for JWT token operations.
type Provider interface {
	// GenerateToken creates a signed HS256 token for subject with role.
	GenerateToken(subject string, role authdomain.Role, ttl time.Duration) (string, error)

	// ValidateToken validates a token and returns the claims if valid.
	ValidateToken(tokenString string) (*authdomain.Claims, error)
}
