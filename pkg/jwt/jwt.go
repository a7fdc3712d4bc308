package jwt

import (
	"fmt"
	"time"

	"vendor-report-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateToken signs a new HS256 token for userID.
func (m *managerImpl) GenerateToken(userID, email, role string) (string, error) {
	now := time.Now()

	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID,
			Audience:  m.audience,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (m *managerImpl) verifyToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwt.WithAudience(m.audience[0]))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// Verify implements scope.Manager.
func (m *managerImpl) Verify(token string) (scope.Payload, error) {
	claims, err := m.verifyToken(token)
	if err != nil {
		return scope.Payload{}, err
	}

	p := scope.Payload{
		UserID:   claims.Subject,
		Username: claims.Email,
		Role:     claims.Role,
		Subject:  claims.Subject,
		ID:       claims.ID,
		Issuer:   claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	return p, nil
}
