package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/forager/internal/iiif"
)

// HandleManifest serves GET /{id...}/manifest: everything before the trailing
// /manifest segment is the item identifier. Path and identifier failures in
// the assembler surface as a 500 with the error text as body.
func (h *Handler) HandleManifest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	id, found := strings.CutSuffix(path, "/manifest")
	if !found || id == "" {
		http.NotFound(w, r)
		return
	}

	slog.Info("Manifest requested", "id", id)
	manifest, err := h.manifestSource.ManifestFor(iiif.ID(id))
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, manifest)
}
