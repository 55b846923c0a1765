package middleware

import (
	"net/http"
	"strings"
	"time"

	"travelbook/atlas/internal/auth"
	"travelbook/atlas/internal/common"
	"travelbook/atlas/internal/constants"
	"travelbook/atlas/internal/logging"
)

// AdminAuthMiddleware guards operator endpoints with a bearer token. A nil
// signer disables the check.
func AdminAuthMiddleware(signer *auth.TokenSigner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if signer == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			claims, err := signer.Validate(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logging.Warn("Rejected operator token", "path", r.URL.Path, "error", err)
				common.RespondError(w, initTime, nil, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			ctx := auth.WithOperator(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
