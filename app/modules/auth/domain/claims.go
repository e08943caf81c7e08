package authdomain

import "time"

// Claims is the verified content of a bearer token.
type Claims struct {
	Subject   string
	Role      Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
