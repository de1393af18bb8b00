package models

import (
	"time"
)

// Game identifiers accepted by the score endpoint.
const (
	GameNumberGuess = "number_guess"
	GameMemory      = "memory"
	GameTrivia      = "trivia"
)

// Games lists every playable game in display order.
var Games = []string{GameNumberGuess, GameMemory, GameTrivia}

type GameScore struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	GameName  string    `json:"gameName" gorm:"index;not null"`
	Score     int       `json:"score" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      uint   `json:"userId"`
	Username    string `json:"username"`
	Score       int    `json:"score"`
	GamesPlayed int    `json:"gamesPlayed"`
}
