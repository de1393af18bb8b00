package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"gorm.io/gorm"
)

// SaveAssessment inserts or updates a survey. Rows with a UserID are matched
// by user, the rest by ticket. On update the existing ID and ticket are kept.
func (r *Repository) SaveAssessment(ctx context.Context, a *models.Assessment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Assessment
		var err error
		if a.UserID != nil {
			err = tx.Where("user_id = ?", *a.UserID).First(&existing).Error
		} else {
			err = tx.Where("ticket = ? AND user_id IS NULL", a.Ticket).First(&existing).Error
		}

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(a).Error; err != nil {
				return fmt.Errorf("failed to create assessment: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("failed to look up assessment: %w", err)
		}

		a.ID = existing.ID
		a.Ticket = existing.Ticket
		a.CreatedAt = existing.CreatedAt
		if err := tx.Save(a).Error; err != nil {
			return fmt.Errorf("failed to update assessment: %w", err)
		}
		return nil
	})
}

func (r *Repository) GetAssessmentByTicket(ctx context.Context, ticket string) (*models.Assessment, error) {
	return r.firstAssessment(ctx, "ticket = ?", ticket)
}

func (r *Repository) GetAssessmentByUser(ctx context.Context, userID uint) (*models.Assessment, error) {
	return r.firstAssessment(ctx, "user_id = ?", userID)
}

func (r *Repository) firstAssessment(ctx context.Context, query string, arg any) (*models.Assessment, error) {
	var a models.Assessment
	err := r.db.WithContext(ctx).Where(query, arg).First(&a).Error
	switch {
	case err == nil:
		return &a, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
}
