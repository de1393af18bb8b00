package repositories

import (
	"context"
	"fmt"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
)

func (r *Repository) SaveScore(ctx context.Context, score *models.GameScore) error {
	if err := r.db.WithContext(ctx).Create(score).Error; err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	return nil
}

// BestScores returns the highest score per game for a user.
func (r *Repository) BestScores(ctx context.Context, userID uint) (map[string]int, error) {
	var rows []struct {
		GameName  string
		BestScore int
	}
	err := r.db.WithContext(ctx).Model(&models.GameScore{}).
		Select("game_name, MAX(score) AS best_score").
		Where("user_id = ?", userID).
		Group("game_name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load best scores: %w", err)
	}

	best := make(map[string]int, len(rows))
	for _, row := range rows {
		best[row.GameName] = row.BestScore
	}
	return best, nil
}

// Leaderboard ranks users by the sum of their best score in each game, or by
// their best score in one game when game is non-empty. Ties share a rank.
func (r *Repository) Leaderboard(ctx context.Context, game string, limit int) ([]models.LeaderboardEntry, error) {
	db := r.db.WithContext(ctx)

	best := db.Model(&models.GameScore{}).
		Select("user_id, game_name, MAX(score) AS best").
		Group("user_id, game_name")
	if game != "" {
		best = best.Where("game_name = ?", game)
	}

	var rows []models.LeaderboardEntry
	err := db.Table("(?) AS b", best).
		Select("users.id AS user_id, users.username AS username, SUM(b.best) AS score, COUNT(b.game_name) AS games_played").
		Joins("JOIN users ON users.id = b.user_id").
		Group("users.id, users.username").
		Order("score DESC, users.username ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	for i := range rows {
		if i > 0 && rows[i].Score == rows[i-1].Score {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}
	return rows, nil
}
