package scope

import (
	"context"
	"testing"

	"vendor-report-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScope_FallsBackToSubject(t *testing.T) {
	sc := NewScope(Payload{Subject: "vendor-1", Username: "acme@example.com", Role: "VENDOR"})
	assert.Equal(t, model.Scope{UserID: "vendor-1", Username: "acme@example.com", Role: "VENDOR"}, sc)
}

func TestScopeContext(t *testing.T) {
	assert.Equal(t, model.Scope{}, GetScopeFromContext(context.Background()))

	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "v1"})
	assert.Equal(t, "v1", GetScopeFromContext(ctx).UserID)
}

func TestScopeHeaderRoundTrip(t *testing.T) {
	in := model.Scope{UserID: "v1", Username: "acme", Role: "VENDOR"}
	h, err := CreateScopeHeader(in)
	require.NoError(t, err)

	out, err := ParseScopeHeader(h)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = ParseScopeHeader("%%%")
	assert.Error(t, err)
}
