package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/daybook-app/daybook/internal/service/backup"
)

// backupService defines the minimal interface needed by BackupHandler.
type backupService interface {
	Export(ctx context.Context) (backup.Document, error)
	Import(ctx context.Context, doc backup.Document) (backup.ImportSummary, error)
}

// BackupHandler serves the backup export/import endpoints.
type BackupHandler struct {
	svc backupService
	log *slog.Logger
}

// NewBackupHandler creates a BackupHandler.
func NewBackupHandler(svc backupService, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{svc: svc, log: logger.With("handler", "backup")}
}

// Export handles GET /api/backup/export. The response carries a download
// filename so browsers save it directly.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	filename := fmt.Sprintf("daybook-backup-%s.json", doc.CreatedAt.Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writeJSON(w, http.StatusOK, doc)
}

// Import handles POST /api/backup/import.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	var doc backup.Document
	if !decodeBody(w, r, &doc) {
		return
	}

	summary, err := h.svc.Import(r.Context(), doc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
