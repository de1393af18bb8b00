package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"gorm.io/gorm"
)

// ReplaceDocument stores doc as the user's only document of its type.
// The row it supersedes, if any, is returned so its file can be removed.
func (r *Repository) ReplaceDocument(ctx context.Context, doc *models.Document) (*models.Document, error) {
	var previous *models.Document
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Document
		err := tx.Where("user_id = ? AND document_type = ?", doc.UserID, doc.DocumentType).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to delete previous document: %w", err)
			}
			previous = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("failed to look up previous document: %w", err)
		}

		if err := tx.Create(doc).Error; err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return previous, nil
}

// ListDocuments returns the user's documents, newest first.
func (r *Repository) ListDocuments(ctx context.Context, userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC, id DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns the document only when it belongs to userID.
func (r *Repository) GetDocument(ctx context.Context, userID, id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&doc).Error
	switch {
	case err == nil:
		return &doc, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
}
