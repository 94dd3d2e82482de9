package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rosterhub-backend/internal/config"
	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/security"
)

type AuthHandler struct {
	adminEmail        string
	adminPasswordHash string
	tokens            security.TokenManager
}

func NewAuthHandler(cfg *config.Config, tokens security.TokenManager) *AuthHandler {
	return &AuthHandler{
		adminEmail:        cfg.Admin.Email,
		adminPasswordHash: cfg.Admin.PasswordHash,
		tokens:            tokens,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the admin credentials and issues a bearer token for the
// console session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !strings.EqualFold(req.Email, h.adminEmail) ||
		bcrypt.CompareHashAndPassword([]byte(h.adminPasswordHash), []byte(req.Password)) != nil {
		logger.Warn("Rejected console login attempt", "email", req.Email)
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.tokens.GenerateAccessToken(req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
