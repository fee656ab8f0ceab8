package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/nyangbti/catquiz/internal/achieve"
	"github.com/nyangbti/catquiz/internal/catquiz"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "CatQuiz API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the cat breed matching quiz.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/breeds
	listBreeds, _ := r.NewOperationContext(http.MethodGet, "/api/breeds")
	listBreeds.SetSummary("List breeds")
	listBreeds.SetDescription("Returns the full breed catalog in popularity rank order.")
	listBreeds.AddRespStructure([]catquiz.Breed{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listBreeds)

	// GET /api/breeds/{id}
	getBreed, _ := r.NewOperationContext(http.MethodGet, "/api/breeds/{id}")
	getBreed.SetSummary("Get breed")
	getBreed.SetDescription("Returns one breed with its three most similar breeds.")
	getBreed.AddRespStructure(BreedDetailResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getBreed.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getBreed)

	// GET /api/breeds/{id}/similar
	similarBreeds, _ := r.NewOperationContext(http.MethodGet, "/api/breeds/{id}/similar")
	similarBreeds.SetSummary("Rank breeds by similarity")
	similarBreeds.SetDescription("Returns every other breed ranked by personality similarity.")
	similarBreeds.AddRespStructure([]catquiz.SimilarBreed{}, openapi.WithHTTPStatus(http.StatusOK))
	similarBreeds.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(similarBreeds)

	// GET /api/questions
	listQuestions, _ := r.NewOperationContext(http.MethodGet, "/api/questions")
	listQuestions.SetSummary("List questions")
	listQuestions.SetDescription("Returns the ordered question bank.")
	listQuestions.AddRespStructure([]catquiz.Question{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listQuestions)

	// GET /api/questions/daily
	daily, _ := r.NewOperationContext(http.MethodGet, "/api/questions/daily")
	daily.SetSummary("Daily quiz")
	daily.SetDescription("Returns the date-seeded daily question subset. Same set for all callers on a given KST date.")
	daily.AddRespStructure([]catquiz.Question{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(daily)

	// POST /api/match
	postMatch, _ := r.NewOperationContext(http.MethodPost, "/api/match")
	postMatch.SetSummary("Compute matches")
	postMatch.SetDescription("Ranks every breed against the answer set. Partial and empty answer sets are allowed.")
	postMatch.AddReqStructure(MatchRequest{})
	postMatch.AddRespStructure(MatchResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postMatch.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postMatch)

	// GET /api/match/shared
	sharedMatch, _ := r.NewOperationContext(http.MethodGet, "/api/match/shared")
	sharedMatch.SetSummary("Reconstruct shared result")
	sharedMatch.SetDescription("Rebuilds a result from share-link query parameters (breed and score).")
	sharedMatch.AddRespStructure(MatchResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	sharedMatch.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	sharedMatch.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(sharedMatch)

	// POST /api/compare
	postCompare, _ := r.NewOperationContext(http.MethodPost, "/api/compare")
	postCompare.SetSummary("Compare with a friend")
	postCompare.SetDescription("Computes top matches for two answer sets and the similarity between the matched breeds.")
	postCompare.AddReqStructure(CompareRequest{})
	postCompare.AddRespStructure(CompareResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCompare.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postCompare)

	// POST /api/share
	postShare, _ := r.NewOperationContext(http.MethodPost, "/api/share")
	postShare.SetSummary("Create share link")
	postShare.SetDescription("Persists a result and returns a share id.")
	postShare.AddReqStructure(ShareRequest{})
	postShare.AddRespStructure(ShareCreatedResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postShare.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postShare)

	// GET /api/share/{id}
	getShare, _ := r.NewOperationContext(http.MethodGet, "/api/share/{id}")
	getShare.SetSummary("Get shared result")
	getShare.SetDescription("Returns a persisted result with its explanation.")
	getShare.AddRespStructure(ShareResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getShare.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getShare)

	// POST /api/profile
	postProfile, _ := r.NewOperationContext(http.MethodPost, "/api/profile")
	postProfile.SetSummary("Create profile")
	postProfile.SetDescription("Creates an anonymous profile. Returns the bearer token for profile-scoped endpoints.")
	postProfile.AddRespStructure(ProfileCreatedResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postProfile)

	// GET /api/profile/achievements
	getAchievements, _ := r.NewOperationContext(http.MethodGet, "/api/profile/achievements")
	getAchievements.SetSummary("Get achievements")
	getAchievements.SetDescription("Returns the profile's progress state and all achievement definitions. Requires Bearer token.")
	getAchievements.AddRespStructure(AchievementsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getAchievements.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getAchievements)

	// POST /api/profile/events
	postEvent, _ := r.NewOperationContext(http.MethodPost, "/api/profile/events")
	postEvent.SetSummary("Track event")
	postEvent.SetDescription("Merges a tracked event into the profile state and returns newly unlocked achievements. Requires Bearer token.")
	postEvent.AddReqStructure(achieve.Event{})
	postEvent.AddRespStructure(TrackEventResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postEvent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postEvent.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postEvent)

	// POST /api/profile/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/profile/reset")
	postReset.SetSummary("Reset profile")
	postReset.SetDescription("Wipes achievement state and result history. Requires Bearer token.")
	postReset.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postReset)

	// GET /api/profile/history
	getHistory, _ := r.NewOperationContext(http.MethodGet, "/api/profile/history")
	getHistory.SetSummary("Get result history")
	getHistory.SetDescription("Returns the profile's persisted quiz results, newest first. Requires Bearer token.")
	getHistory.AddRespStructure([]catquiz.HistoryEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	getHistory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getHistory)

	// POST /api/profile/history
	postHistory, _ := r.NewOperationContext(http.MethodPost, "/api/profile/history")
	postHistory.SetSummary("Append result history")
	postHistory.SetDescription("Appends a quiz result to the profile's history. Requires Bearer token.")
	postHistory.AddReqStructure(HistoryRequest{})
	postHistory.AddRespStructure([]catquiz.HistoryEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	postHistory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postHistory.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postHistory)

	// POST /api/admin/login
	postLogin, _ := r.NewOperationContext(http.MethodPost, "/api/admin/login")
	postLogin.SetSummary("Admin login")
	postLogin.SetDescription("Authenticate with the admin password. Sets admin_session cookie.")
	postLogin.AddReqStructure(AdminLoginRequest{})
	postLogin.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postLogin.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postLogin)

	// GET /api/admin/stats
	getStats, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stats")
	getStats.SetSummary("Service stats")
	getStats.SetDescription("Aggregate catalog, profile, and share counts. Requires admin_session cookie.")
	getStats.AddRespStructure(AdminStatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getStats.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getStats)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
