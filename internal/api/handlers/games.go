package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/utils"
	"github.com/BHa01559102-bit/hexecutioners/internal/web"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

var errBadQuery = errors.New("invalid query")

type scoreInput struct {
	GameName string `json:"game_name" validate:"required,oneof=number_guess memory trivia"`
	Score    *int   `json:"score" validate:"required,gte=0,lte=1000000"`
}

// GET /dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())
	best, err := h.repo.BestScores(r.Context(), sess.UserID)
	if err != nil {
		h.serverError(w, r, "failed to load scores", err)
		return
	}

	page := h.views.NewPage(r, "dashboard.title")
	page.Data = web.DashboardView{Games: gameSummaries(best)}
	h.views.Render(w, http.StatusOK, "dashboard", page)
}

// GET /games
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	page := h.views.NewPage(r, "games.title")
	page.Data = web.DashboardView{Games: gameSummaries(nil)}
	h.views.Render(w, http.StatusOK, "games", page)
}

// GamePage serves the play page of one game.
func (h *Handler) GamePage(game string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := h.views.NewPage(r, "game."+game)
		h.views.Render(w, http.StatusOK, game, page)
	}
}

func gameSummaries(best map[string]int) []web.GameSummary {
	out := make([]web.GameSummary, 0, len(models.Games))
	for _, id := range models.Games {
		score, played := best[id]
		out = append(out, web.GameSummary{ID: id, Path: web.GamePath(id), Best: score, Played: played})
	}
	return out
}

// POST /api/save-score
// SaveScore godoc
// @Summary Record a finished game
// @Tags Games
// @Accept json
// @Produce json
// @Param body body scoreInput true "Score"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/save-score [post]
func (h *Handler) SaveScore(w http.ResponseWriter, r *http.Request) {
	var input scoreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if errs := h.validate.Struct(input); errs != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
			Errors:  errs,
		})
		return
	}

	score := &models.GameScore{
		UserID:   session.FromContext(r.Context()).UserID,
		GameName: input.GameName,
		Score:    *input.Score,
	}
	if err := h.repo.SaveScore(r.Context(), score); err != nil {
		h.serverError(w, r, "failed to save score", err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Score saved",
		Data:    score,
	})
}

// GET /leaderboard
func (h *Handler) LeaderboardPage(w http.ResponseWriter, r *http.Request) {
	game, limit, err := leaderboardQuery(r)
	if err != nil {
		game, limit = "", defaultLeaderboardLimit
	}

	entries, err := h.repo.Leaderboard(r.Context(), game, limit)
	if err != nil {
		h.serverError(w, r, "failed to load leaderboard", err)
		return
	}

	page := h.views.NewPage(r, "leaderboard.title")
	page.Data = web.LeaderboardView{Entries: entries, Games: models.Games, Game: game}
	h.views.Render(w, http.StatusOK, "leaderboard", page)
}

// GET /api/leaderboard
// Leaderboard godoc
// @Summary Top players
// @Description Ranks users by the sum of their best score per game, or by their best score in one game.
// @Tags Games
// @Produce json
// @Param game query string false "number_guess, memory or trivia"
// @Param limit query int false "1..100, default 10"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/leaderboard [get]
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	game, limit, err := leaderboardQuery(r)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid game or limit")
		return
	}

	entries, err := h.repo.Leaderboard(r.Context(), game, limit)
	if err != nil {
		h.serverError(w, r, "failed to load leaderboard", err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Leaderboard",
		Data:    entries,
	})
}

func leaderboardQuery(r *http.Request) (string, int, error) {
	q := r.URL.Query()

	game := q.Get("game")
	if game != "" && !slices.Contains(models.Games, game) {
		return "", 0, errBadQuery
	}

	limit := defaultLeaderboardLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLeaderboardLimit {
			return "", 0, errBadQuery
		}
		limit = n
	}
	return game, limit, nil
}
