package rest

import (
	"net/http"

	"github.com/daybook-app/daybook/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Entry    *EntryHandler
	Backup   *BackupHandler
	Settings *SettingsHandler
}

// NewRouter builds the ServeMux. Journal and tag routes are open; the
// account, settings, and backup routes require an authenticated session.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	mux.HandleFunc("POST /api/register", h.Auth.Register)
	mux.HandleFunc("POST /api/login", h.Auth.Login)
	mux.HandleFunc("POST /api/logout", h.Auth.Logout)
	mux.Handle("GET /api/user", middleware.RequireUser(http.HandlerFunc(h.Auth.Me)))

	mux.HandleFunc("GET /api/entries", h.Entry.List)
	mux.HandleFunc("POST /api/entries", h.Entry.Create)
	mux.HandleFunc("GET /api/entries/favorites", h.Entry.ListFavorites)
	mux.HandleFunc("GET /api/entries/by-emotion/{id}", h.Entry.ListByEmotion)
	mux.HandleFunc("GET /api/entries/by-place/{id}", h.Entry.ListByPlace)
	mux.HandleFunc("GET /api/entries/by-person/{id}", h.Entry.ListByPerson)
	mux.HandleFunc("GET /api/entries/{id}", h.Entry.Get)
	mux.HandleFunc("PUT /api/entries/{id}", h.Entry.Update)
	mux.HandleFunc("DELETE /api/entries/{id}", h.Entry.Delete)
	mux.HandleFunc("PATCH /api/entries/{id}/toggle-favorite", h.Entry.ToggleFavorite)

	mux.HandleFunc("GET /api/emotions", h.Catalog.ListEmotions)
	mux.HandleFunc("POST /api/emotions", h.Catalog.CreateEmotion)
	mux.HandleFunc("GET /api/emotions/{id}", h.Catalog.GetEmotion)
	mux.HandleFunc("PUT /api/emotions/{id}", h.Catalog.UpdateEmotion)
	mux.HandleFunc("DELETE /api/emotions/{id}", h.Catalog.DeleteEmotion)

	mux.HandleFunc("GET /api/people", h.Catalog.ListPeople)
	mux.HandleFunc("POST /api/people", h.Catalog.CreatePerson)
	mux.HandleFunc("GET /api/people/{id}", h.Catalog.GetPerson)
	mux.HandleFunc("PUT /api/people/{id}", h.Catalog.UpdatePerson)
	mux.HandleFunc("DELETE /api/people/{id}", h.Catalog.DeletePerson)

	mux.HandleFunc("GET /api/places", h.Catalog.ListPlaces)
	mux.HandleFunc("POST /api/places", h.Catalog.CreatePlace)
	mux.HandleFunc("GET /api/places/{id}", h.Catalog.GetPlace)
	mux.HandleFunc("PUT /api/places/{id}", h.Catalog.UpdatePlace)
	mux.HandleFunc("DELETE /api/places/{id}", h.Catalog.DeletePlace)

	protected := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireUser(fn)
	}

	mux.Handle("GET /api/backup/export", protected(h.Backup.Export))
	mux.Handle("POST /api/backup/import", protected(h.Backup.Import))

	mux.Handle("GET /api/settings", protected(h.Settings.Get))
	mux.Handle("PUT /api/settings", protected(h.Settings.Update))

	return mux
}
