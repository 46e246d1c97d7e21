package middleware

import (
	"context"
	"net/http"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/pkg/ctxutil"
)

type authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

// Auth reads the session cookie and, when it resolves to a live session,
// attaches the user id to the request context. Requests without a cookie
// pass through anonymous; a present but invalid cookie is rejected so a
// stale session fails loudly instead of silently downgrading.
func Auth(auth authenticator, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			user, err := auth.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests whose context carries no authenticated user.
// It sits after Auth on routes that must not be anonymous.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
