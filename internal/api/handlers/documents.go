package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BHa01559102-bit/hexecutioners/internal/models"
	"github.com/BHa01559102-bit/hexecutioners/internal/repositories"
	"github.com/BHa01559102-bit/hexecutioners/internal/session"
	"github.com/BHa01559102-bit/hexecutioners/internal/utils"
)

const (
	// multipart framing on top of the file itself
	uploadOverhead = 1 << 20
	maxKeyAttempts = 100
)

// POST /upload-document
// UploadDocument godoc
// @Summary Upload a document
// @Description Stores one file per document type, replacing any earlier upload of that type.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param document formData file true "JPG, PNG or PDF"
// @Param document_type formData string true "Document type"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Failure 413 {object} utils.Payload
// @Router /upload-document [post]
func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	userID := session.FromContext(r.Context()).UserID

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes+uploadOverhead)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.Fail(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		utils.Fail(w, http.StatusBadRequest, "Invalid file upload form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("document")
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		utils.Fail(w, http.StatusBadRequest, "No file selected")
		return
	}
	if header.Size > h.cfg.MaxUploadBytes {
		utils.Fail(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	ext := fileExtension(header.Filename)
	if !models.AllowedExtensions[ext] {
		utils.Fail(w, http.StatusBadRequest, "Invalid file type. Only JPG, PNG, and PDF allowed")
		return
	}

	docType := strings.TrimSpace(r.FormValue("document_type"))
	if docType == "" {
		utils.Fail(w, http.StatusBadRequest, "Document type not specified")
		return
	}
	if err := h.validate.Var(docType, "doctype"); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid document type")
		return
	}

	key, err := h.documentKey(r.Context(), userID, docType, ext)
	if err != nil {
		h.serverError(w, r, "failed to pick storage key", err)
		return
	}
	if err := h.store.Save(r.Context(), key, file); err != nil {
		h.serverError(w, r, "failed to store document", err)
		return
	}

	doc := &models.Document{
		UserID:       userID,
		DocumentType: docType,
		FilePath:     key,
	}
	previous, err := h.repo.ReplaceDocument(r.Context(), doc)
	if err != nil {
		if rmErr := h.store.Remove(r.Context(), key); rmErr != nil {
			slog.Warn("failed to remove orphaned upload", "key", key, "error", rmErr)
		}
		h.serverError(w, r, "failed to save document", err)
		return
	}

	if previous != nil && previous.FilePath != key {
		if err := h.store.Remove(r.Context(), previous.FilePath); err != nil {
			slog.Warn("failed to remove superseded document", "key", previous.FilePath, "error", err)
		}
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: docType + " uploaded successfully",
		Data:    doc,
	})
}

// GET /download-document/{id}
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	userID := session.FromContext(r.Context()).UserID

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	doc, err := h.repo.GetDocument(r.Context(), userID, uint(id))
	if errors.Is(err, repositories.ErrNotFound) {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to load document", err)
		return
	}

	rc, err := h.store.Open(r.Context(), doc.FilePath)
	if errors.Is(err, repositories.ErrNotFound) {
		slog.Warn("document file missing", "document_id", doc.ID, "key", doc.FilePath)
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to open document", err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(doc.FilePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename()}))
	if _, err := io.Copy(w, rc); err != nil {
		slog.Warn("document download interrupted", "document_id", doc.ID, "error", err)
	}
}

// documentKey names a new upload "<user>/<type>_<YYYYmmdd_HHMMSS>.<ext>".
// A key that is already taken, by a re-upload within the same second, gets
// a numeric suffix so the stored file of the current row is never overwritten.
func (h *Handler) documentKey(ctx context.Context, userID uint, docType, ext string) (string, error) {
	base := fmt.Sprintf("%d/%s_%s", userID, docType, h.now().Format("20060102_150405"))
	key := base + "." + ext
	for i := 1; i <= maxKeyAttempts; i++ {
		taken, err := h.store.Exists(ctx, key)
		if err != nil {
			return "", err
		}
		if !taken {
			return key, nil
		}
		key = fmt.Sprintf("%s_%d.%s", base, i, ext)
	}
	return "", fmt.Errorf("no free storage key for %s", base)
}

func fileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
