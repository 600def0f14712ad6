package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/config"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
	jwtinfra "github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/infrastructure/jwt"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// AuthorHandler issues author tokens against the single configured
// credential. Authoring itself happens in the external document system;
// this token only authorises the publish webhook.
type AuthorHandler struct {
	cfg *config.Config
	jwt *jwtinfra.Provider
}

func NewAuthorHandler(cfg *config.Config, jwt *jwtinfra.Provider) *AuthorHandler {
	return &AuthorHandler{cfg: cfg, jwt: jwt}
}

func (h *AuthorHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.jwt == nil || h.cfg.AuthorEmail == "" || h.cfg.AuthorPasswordHash == "" {
		writeError(w, http.StatusServiceUnavailable, "author login not configured")
		return
	}

	var req domain.AuthorLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !strings.EqualFold(req.Email, h.cfg.AuthorEmail) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AuthorPasswordHash), []byte(req.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	bearer, err := h.jwt.Sign(h.cfg.AuthorEmail, domain.RoleAuthor)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not sign token")
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Bearer: bearer})
}
