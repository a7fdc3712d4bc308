package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"vendor-report-srv/internal/model"
)

// Manager verifies an access token and returns its payload.
type Manager interface {
	Verify(token string) (Payload, error)
}

// Payload is the verified token content.
type Payload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	Subject   string `json:"sub"`
	ID        string `json:"jti"`
	Issuer    string `json:"iss"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
}

type payloadCtxKey struct{}
type scopeCtxKey struct{}

// NewScope creates a new scope.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return p, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the caller scope, or an empty scope when the request is anonymous.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeCtxKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

func CreateScopeHeader(scope model.Scope) (string, error) {
	jsonData, err := json.Marshal(scope)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var scope model.Scope
	if err := json.Unmarshal(jsonData, &scope); err != nil {
		return model.Scope{}, err
	}
	return scope, nil
}
