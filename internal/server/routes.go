package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/nyangbti/catquiz/internal/achieve"
	"github.com/nyangbti/catquiz/internal/catalog"
	"github.com/nyangbti/catquiz/internal/catquiz"
	"github.com/nyangbti/catquiz/internal/match"
)

func addRoutes(r chi.Router, logger *slog.Logger, docs *DocStore, profiles *ProfileStore, achievements *achieve.Store, adminHash, spaDir string) {
	engine := match.NewEngine(catalog.Questions(), catquiz.DefaultWeights())

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("CatQuiz API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, docs, profiles))

	r.Route("/api", func(r chi.Router) {
		// Catalog and scoring — stateless, no auth.
		r.Get("/breeds", handleListBreeds())
		r.Get("/breeds/{id}", handleGetBreed())
		r.Get("/breeds/{id}/similar", handleSimilarBreeds())
		r.Get("/questions", handleListQuestions())
		r.Get("/questions/daily", handleDailyQuiz())
		r.Post("/match", handleMatch(engine))
		r.Get("/match/shared", handleSharedMatch())
		r.Post("/compare", handleCompare(engine))

		// Share links — persisted result documents.
		r.Post("/share", handleCreateShare(docs))
		r.Get("/share/{id}", handleGetShare(docs))

		// Anonymous profiles — achievements and history.
		r.Route("/profile", func(r chi.Router) {
			r.Post("/", handleCreateProfile(profiles))

			r.Group(func(r chi.Router) {
				r.Use(profileMiddleware(profiles))
				r.Get("/achievements", handleGetAchievements(achievements))
				r.Post("/events", handleTrackEvent(achievements))
				r.Post("/reset", handleResetProfile(profiles, achievements))
				r.Get("/history", handleGetHistory(profiles))
				r.Post("/history", handleAppendHistory(profiles))
			})
		})

		// Admin — disabled unless a password hash is configured.
		if adminHash != "" {
			r.Post("/admin/login", handleAdminLogin(docs, adminHash))
			r.Group(func(r chi.Router) {
				r.Use(adminAuthMiddleware(docs))
				r.Get("/admin/stats", handleAdminStats(docs, profiles))
			})
		}
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
