package authjwt

import "errors"

// Admin bearer token failures. AdminMiddleware reports ErrExpiredToken
// separately so the editor knows to sign in again.
var (
	ErrInvalidToken     = errors.New("admin token is malformed or lacks required claims")
	ErrExpiredToken     = errors.New("admin token expired")
	ErrInvalidSignature = errors.New("admin token signature does not match the configured secret")
)
