package httpx

import (
	"context"

	"github.com/modboard/modboard/pkg/jwtx"
)

type ctxKey string

const (
	ctxKeyActorID ctxKey = "actor_id"
	ctxKeyClaims  ctxKey = "claims"
)

// WithActor stores the authenticated user's id and token claims on ctx.
func WithActor(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, ctxKeyActorID, c.Subject)
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ActorID returns the authenticated user id, or "" outside AuthnMiddleware.
func ActorID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyActorID).(string)
	return id
}

// ClaimsFrom returns the verified token claims if present.
func ClaimsFrom(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
