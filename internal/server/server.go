// Package server wires the services together and exposes the HTTP API.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bursteinalan/fooder/internal/auth"
	"github.com/bursteinalan/fooder/internal/grocery"
	"github.com/bursteinalan/fooder/internal/handler"
	"github.com/bursteinalan/fooder/internal/logging"
	"github.com/bursteinalan/fooder/internal/middleware"
	"github.com/bursteinalan/fooder/internal/recipe"
	"github.com/bursteinalan/fooder/internal/scraper"
	"github.com/bursteinalan/fooder/internal/store"
	"github.com/bursteinalan/fooder/internal/sync"
)

// Config carries the non-storage knobs of the server.
type Config struct {
	// SeedSignupOverrides copies the common category mapping into each
	// new account's personal overrides.
	SeedSignupOverrides bool
}

type Server struct {
	hub         *sync.Hub
	authSvc     *auth.Service
	authH       *handler.AuthHandler
	recipeH     *handler.RecipeHandler
	groceryH    *handler.GroceryHandler
	savedListH  *handler.SavedListHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(st store.Store, cfg Config, logger *slog.Logger) *Server {
	hub := sync.NewHub(logging.Component(logger, "websocket"))

	authSvc := auth.NewService(st, cfg.SeedSignupOverrides)
	recipeSvc := recipe.NewService(st)
	categorizer := grocery.NewCategorizer(st)
	consolidator := grocery.NewConsolidator(st, categorizer)
	savedLists := grocery.NewSavedLists(st)
	scraperSvc := scraper.New(logging.Component(logger, "scraper"))

	return &Server{
		hub:         hub,
		authSvc:     authSvc,
		authH:       handler.NewAuthHandler(authSvc, logging.Component(logger, "auth")),
		recipeH:     handler.NewRecipeHandler(recipeSvc, scraperSvc, hub, logging.Component(logger, "recipe")),
		groceryH:    handler.NewGroceryHandler(consolidator, categorizer, logging.Component(logger, "grocery")),
		savedListH:  handler.NewSavedListHandler(savedLists, hub, logging.Component(logger, "saved_list")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}
}

// Hub returns the sync hub, mainly for tests and cleanup tasks.
func (s *Server) Hub() *sync.Hub {
	return s.hub
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/signup", s.rateLimitedHandler(s.authH.Signup))
	outerMux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.authSvc)
	outerMux.Handle("/", authMiddleware(protectedMux))

	// Apply request logging middleware
	return middleware.RequestLogger(logging.Component(s.logger, "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Auth routes that require authentication
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)
	mux.HandleFunc("POST /api/auth/logout", s.authH.Logout)

	// Recipe API routes
	mux.HandleFunc("POST /api/recipes", s.recipeH.Create)
	mux.HandleFunc("GET /api/recipes", s.recipeH.List)
	mux.HandleFunc("POST /api/recipes/scrape", s.recipeH.Scrape)
	mux.HandleFunc("GET /api/recipes/ingredients/names", s.recipeH.IngredientNames)
	mux.HandleFunc("GET /api/recipes/{id}", s.recipeH.Get)
	mux.HandleFunc("PUT /api/recipes/{id}", s.recipeH.Update)
	mux.HandleFunc("DELETE /api/recipes/{id}", s.recipeH.Delete)

	// Grocery list API routes
	mux.HandleFunc("POST /api/grocery-list", s.groceryH.Generate)
	mux.HandleFunc("GET /api/grocery-list/categories", s.groceryH.Categories)
	mux.HandleFunc("GET /api/grocery-list/uncategorized", s.groceryH.Uncategorized)
	mux.HandleFunc("GET /api/grocery-list/category", s.groceryH.Category)
	mux.HandleFunc("PUT /api/grocery-list/category", s.groceryH.SetCategory)

	// Saved list API routes
	mux.HandleFunc("POST /api/saved-lists", s.savedListH.Create)
	mux.HandleFunc("GET /api/saved-lists", s.savedListH.List)
	mux.HandleFunc("GET /api/saved-lists/{id}", s.savedListH.Get)
	mux.HandleFunc("PUT /api/saved-lists/{id}", s.savedListH.Rename)
	mux.HandleFunc("DELETE /api/saved-lists/{id}", s.savedListH.Delete)
	mux.HandleFunc("POST /api/saved-lists/{id}/items", s.savedListH.AddItem)
	mux.HandleFunc("DELETE /api/saved-lists/{id}/items/{itemID}", s.savedListH.RemoveItem)
	mux.HandleFunc("PATCH /api/saved-lists/{id}/items/{itemID}/check", s.savedListH.ToggleItem)

	// Real-time sync
	mux.Handle("GET /ws", sync.HandleWebSocket(s.hub, logging.Component(s.logger, "websocket")))
}
