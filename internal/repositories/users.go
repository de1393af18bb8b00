package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"gorm.io/gorm"
)

// CreateUser inserts a new account. Duplicate usernames or e-mails yield ErrUserExists.
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	return createUser(r.db.WithContext(ctx), user)
}

// CreateUserWithAssessment creates the account and claims the eligible,
// unclaimed assessment identified by ticket in a single transaction.
func (r *Repository) CreateUserWithAssessment(ctx context.Context, user *models.User, ticket string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createUser(tx, user); err != nil {
			return err
		}

		res := tx.Model(&models.Assessment{}).
			Where("ticket = ? AND user_id IS NULL AND eligible = ?", ticket, true).
			Update("user_id", user.ID)
		if res.Error != nil {
			return fmt.Errorf("failed to claim assessment: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAssessmentRequired
		}
		return nil
	})
}

func createUser(tx *gorm.DB, user *models.User) error {
	var count int64
	err := tx.Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check user uniqueness: %w", err)
	}
	if count > 0 {
		return ErrUserExists
	}

	if err := tx.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return r.firstUser(ctx, "id = ?", id)
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.firstUser(ctx, "username = ?", username)
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.firstUser(ctx, "email = ?", email)
}

func (r *Repository) firstUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where(query, arg).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
}

// ListUsers returns every account ordered by id.
func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdatePassword replaces the stored hash of the named user.
func (r *Repository) UpdatePassword(ctx context.Context, username, hash string) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ?", username).
		Update("password", hash)
	if res.Error != nil {
		return fmt.Errorf("failed to update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
