package http

import (
	"net/http"

	"rosterhub-backend/internal/logger"
	"rosterhub-backend/internal/service"
)

type MemberHandler struct {
	roster service.RosterService
}

func NewMemberHandler(roster service.RosterService) *MemberHandler {
	return &MemberHandler{roster: roster}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.roster.ListMembers(r.Context())
	if err != nil {
		logger.Error("Failed to list members", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}

	members, err := h.roster.SearchMembers(r.Context(), query)
	if err != nil {
		logger.Error("Failed to search members", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to search members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}
