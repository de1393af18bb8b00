package web

import (
	"github.com/BHa01559102-bit/hexecutioners/internal/models"
)

type SignupView struct {
	Username string
	Email    string
	Errors   map[string]string
}

// Question is one survey field. Questions without options take a number.
type Question struct {
	Field   string
	Options []string
}

type AssessmentResult struct {
	Percentage int
	CanSignup  bool
}

type AssessmentView struct {
	Questions []Question
	Answers   map[string]string
	Result    *AssessmentResult
	LoggedIn  bool
}

type GameSummary struct {
	ID     string
	Path   string
	Best   int
	Played bool
}

type DashboardView struct {
	Games []GameSummary
}

type LeaderboardView struct {
	Entries []models.LeaderboardEntry
	Games   []string
	Game    string
}

type ProfileView struct {
	User          *models.User
	Documents     []models.Document
	DocumentTypes []string
	Assessment    *models.Assessment
}

// GamePath maps a game identifier to its play page.
func GamePath(id string) string {
	switch id {
	case models.GameNumberGuess:
		return "/game/number-guess"
	case models.GameMemory:
		return "/game/memory"
	case models.GameTrivia:
		return "/game/trivia"
	default:
		return "/games"
	}
}
