package fakeapi

import (
	"context"

	"github.com/paylane/paylane-go/internal/domain"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, p domain.PrincipalID) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (domain.PrincipalID, bool) {
	v, ok := ctx.Value(principalKey{}).(domain.PrincipalID)
	return v, ok && v != ""
}
