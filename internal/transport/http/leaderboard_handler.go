package http

import (
	"encoding/json"
	"log"
	"net/http"

	"icebreaker-quiz-service/internal/app"
)

// LeaderboardHandler serves the computed leaderboard as JSON.
type LeaderboardHandler struct {
	ranking *app.RankingService
}

func NewLeaderboardHandler(ranking *app.RankingService) *LeaderboardHandler {
	return &LeaderboardHandler{ranking: ranking}
}

func (h *LeaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	board, err := h.ranking.Leaderboard(r.Context())
	if err != nil {
		log.Printf("compute leaderboard: %v", err)
		http.Error(w, "failed to compute leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(board); err != nil {
		log.Printf("encode leaderboard: %v", err)
	}
}
