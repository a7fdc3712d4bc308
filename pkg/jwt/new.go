package jwt

import (
	"fmt"

	"vendor-report-srv/pkg/scope"
)

// IManager verifies tokens issued by the identity service. GenerateToken uses the same
// secret and is used by tooling and tests.
// Implementations are safe for concurrent use.
type IManager interface {
	scope.Manager
	GenerateToken(userID, email, role string) (string, error)
}

// New creates a new HS256 JWT manager.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       ttl,
	}, nil
}
