package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/service/user"
	"github.com/daybook-app/daybook/pkg/ctxutil"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	GetSettings(ctx context.Context, userID int64) (domain.UserSettings, error)
	UpdateSettings(ctx context.Context, userID int64, in user.UpdateSettingsInput) (domain.UserSettings, error)
}

// SettingsHandler serves the typography settings endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type settingsResponse struct {
	FontFamily string `json:"fontFamily"`
	FontSize   string `json:"fontSize"`
	TextColor  string `json:"textColor"`
}

func toSettingsResponse(s domain.UserSettings) settingsResponse {
	return settingsResponse{FontFamily: s.FontFamily, FontSize: s.FontSize, TextColor: s.TextColor}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	settings, err := h.svc.GetSettings(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}

// Update handles PUT /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req user.UpdateSettingsInput
	if !decodeBody(w, r, &req) {
		return
	}

	settings, err := h.svc.UpdateSettings(r.Context(), userID, req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(settings))
}
