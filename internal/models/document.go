package models

import (
	"path/filepath"
	"time"
)

// AllowedExtensions is the upload allow-list, lower-case and without the dot.
var AllowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"pdf":  true,
}

type Document struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"userId" gorm:"not null;uniqueIndex:idx_documents_user_type"`
	User         *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	DocumentType string    `json:"documentType" gorm:"not null;uniqueIndex:idx_documents_user_type"`
	FilePath     string    `json:"-" gorm:"not null"` // storage key
	UploadedAt   time.Time `json:"uploadedAt" gorm:"autoCreateTime"`
}

// Filename is the name offered to the browser on download.
func (d Document) Filename() string {
	return filepath.Base(d.FilePath)
}
