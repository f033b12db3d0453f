package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/handler"
	"github.com/mcoot/wordtiles/internal/api/middleware"
	"github.com/mcoot/wordtiles/internal/services/dictionary"
	"github.com/mcoot/wordtiles/internal/services/match"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	MatchController   *match.Controller
	DictionaryService *dictionary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	matchHandler := handler.NewMatchHandler(cfg.MatchController)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Match routes
	matches := api.PathPrefix("/matches").Subrouter()
	matches.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matches.HandleFunc("", matchHandler.List).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Delete).Methods(http.MethodDelete)

	// Placing
	matches.HandleFunc("/{id}/placing", matchHandler.StartPlacing).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/placing/toggle", matchHandler.TogglePlace).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/placing/apply", matchHandler.ApplyPlacing).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/placing/cancel", matchHandler.CancelPlacing).Methods(http.MethodPost)

	// Swapping
	matches.HandleFunc("/{id}/swap", matchHandler.StartSwapping).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/swap/toggle", matchHandler.ToggleSwap).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/swap/invert", matchHandler.InvertSwap).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/swap/cancel", matchHandler.CancelSwap).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/swap/apply", matchHandler.ApplySwap).Methods(http.MethodPost)

	matches.HandleFunc("/{id}/reveals", matchHandler.Reveal).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/pass", matchHandler.Pass).Methods(http.MethodPost)

	// Dictionary
	api.HandleFunc("/dictionary/{locale}/words/{word}", dictionaryHandler.Lookup).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
