package authctx

import (
	"context"

	"bridal-film/backend/internal/token"
)

type ctxKey string

const claimsKey ctxKey = "claims"

func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFrom(ctx context.Context) (*token.Claims, bool) {
	v := ctx.Value(claimsKey)
	claims, ok := v.(*token.Claims)
	return claims, ok && claims != nil
}
