package http

import (
	"context"

	"github.com/kmori/techtrends/models"
)

// ctxKey is an unexported type for context values set by this package, so
// they cannot collide with keys from other packages.
type ctxKey int

const authResultKey ctxKey = iota

// authResultFromContext returns the [models.AuthResult] stored by the
// authenticate middleware, or the zero (anonymous) result when the
// middleware did not run.
func authResultFromContext(ctx context.Context) models.AuthResult {
	result, _ := ctx.Value(authResultKey).(models.AuthResult)
	return result
}
