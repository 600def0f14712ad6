package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/content"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/pkg/validate"
)

// ContentHandler handles the author publish webhook.
type ContentHandler struct {
	svc content.Service
}

func NewContentHandler(svc content.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Publish stores the optional replacement document and invalidates the
// cached page so the next request serves fresh content.
func (h *ContentHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var req domain.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.svc.Publish(r.Context(), req.Slug, req.Document); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "published"})
}
