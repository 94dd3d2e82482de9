package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rosterhub-backend/internal/config"
	"rosterhub-backend/internal/security"
	"rosterhub-backend/internal/service"
)

// NewRouter assembles the admin console API.
func NewRouter(cfg *config.Config, tokens security.TokenManager, imports service.ImportService, roster service.RosterService) *mux.Router {
	authHandler := NewAuthHandler(cfg, tokens)
	importHandler := NewImportHandler(imports, cfg.Import.MaxFileSizeMB*1024*1024)
	memberHandler := NewMemberHandler(roster)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	protected := api.PathPrefix("/members").Subrouter()
	protected.Use(AuthMiddleware(tokens))
	protected.HandleFunc("", memberHandler.List).Methods("GET")
	protected.HandleFunc("/search", memberHandler.Search).Methods("GET")
	protected.HandleFunc("/import", importHandler.Upload).Methods("POST")
	protected.HandleFunc("/import/{batchID}/manifest", importHandler.Manifest).Methods("GET")

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
