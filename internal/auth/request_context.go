package auth

import "context"

type operatorKey struct{}

// AnonymousOperator names the caller of an admin route when operator auth is
// disabled.
const AnonymousOperator = "anonymous"

// WithOperator attaches validated operator claims to the request context.
func WithOperator(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, operatorKey{}, claims)
}

// OperatorFrom returns the claims stored by WithOperator, or nil.
func OperatorFrom(ctx context.Context) UserClaims {
	claims, _ := ctx.Value(operatorKey{}).(UserClaims)
	return claims
}

// OperatorSubject is the subject of the operator token behind the request.
func OperatorSubject(ctx context.Context) string {
	if claims := OperatorFrom(ctx); claims != nil && claims.Subject() != "" {
		return claims.Subject()
	}
	return AnonymousOperator
}
