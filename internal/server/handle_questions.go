package server

import (
	"net/http"
	"time"

	"github.com/nyangbti/catquiz/internal/catalog"
)

func handleListQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Questions())
	}
}

func handleDailyQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalog.Daily(time.Now(), catalog.DailyCount))
	}
}
