package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/daybook-app/daybook/internal/config"
	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/service/auth"
	"github.com/daybook-app/daybook/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (domain.User, string, error)
	Login(ctx context.Context, input auth.LoginInput) (domain.User, string, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID int64) (domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	cfg config.AuthConfig
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cfg config.AuthConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg, log: logger.With("handler", "auth")}
}

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

// Register handles POST /api/register. A successful registration logs
// the account in: the session cookie is set on the response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterInput
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := h.svc.Register(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginInput
	if !decodeBody(w, r, &req) {
		return
	}

	user, token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Logout handles POST /api/logout. Succeeds even without a valid
// session; the cookie is cleared either way.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cfg.CookieName); err == nil && cookie.Value != "" {
		if err := h.svc.Logout(r.Context(), cookie.Value); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.svc.CurrentUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
