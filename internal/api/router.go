package api

import (
	"net/http"

	"github.com/BenedictusDevin/ai-copilot/internal/api/handler"
	customMiddleware "github.com/BenedictusDevin/ai-copilot/internal/api/middleware"
	"github.com/BenedictusDevin/ai-copilot/internal/auth"
	"github.com/BenedictusDevin/ai-copilot/internal/config"
	"github.com/BenedictusDevin/ai-copilot/internal/domain"
	"github.com/BenedictusDevin/ai-copilot/internal/extract"
	"github.com/BenedictusDevin/ai-copilot/internal/llm"
	"github.com/BenedictusDevin/ai-copilot/internal/service"
	"github.com/BenedictusDevin/ai-copilot/internal/session"
	"github.com/BenedictusDevin/ai-copilot/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, transcripts *store.TranscriptStore, sess *session.Session) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize core components
	catalog := domain.DefaultCatalog()
	completionClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.RequestTimeout)
	extractor := extract.NewExtractor()

	// Initialize services
	chatService := service.NewChatService(transcripts, completionClient)
	analysisService := service.NewAnalysisService(completionClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(auth.NewGate(), sess)
	chatHandler := handler.NewChatHandler(chatService, catalog)
	modelsHandler := handler.NewModelsHandler(catalog, sess)
	analyzeHandler := handler.NewAnalyzeHandler(extractor, analysisService, catalog, cfg.Upload.MaxBytes)
	historyHandler := handler.NewHistoryHandler(transcripts)

	// Session gate middleware
	sessionGate := customMiddleware.NewSessionGate(sess)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)

		// Login gate (public)
		r.Post("/auth/login", authHandler.Login)

		// Everything else stays locked until login succeeds
		r.Group(func(r chi.Router) {
			r.Use(sessionGate.Require)

			r.Get("/models", modelsHandler.List)
			r.Put("/models", modelsHandler.Select)

			r.Post("/chat", chatHandler.Send)
			r.Get("/chat", chatHandler.Transcript)

			r.Post("/analyze", analyzeHandler.Analyze)

			r.Get("/history", historyHandler.List)
		})
	})

	return r
}
