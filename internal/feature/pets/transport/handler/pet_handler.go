// Package handler provides the HTTP handlers for the pets feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawfinders_backend/internal/api"
	"pawfinders_backend/internal/feature/pets/domain/entity"
	"pawfinders_backend/internal/feature/pets/usecase"
	"pawfinders_backend/internal/platform/storage"
)

// PetUsecase defines the pet operations used by the handlers.
type PetUsecase interface {
	Report(ctx context.Context, in usecase.ReportInput) (*entity.Pet, error)
	List(ctx context.Context) ([]entity.Pet, error)
}

// FileStore persists uploaded images and returns their web-facing path.
type FileStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// PetHandler handles HTTP requests for lost-pet reports.
type PetHandler struct {
	uc    PetUsecase
	files FileStore
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(uc PetUsecase, files FileStore) *PetHandler {
	return &PetHandler{uc: uc, files: files}
}

// Save handles POST /savePet (multipart form). The image field lostPetImage
// is optional; when present it is stored under a generated filename.
func (h *PetHandler) Save(c *gin.Context) {
	var imagePath string
	if file, err := c.FormFile("lostPetImage"); err == nil {
		path, err := h.files.Save(file)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedFileType) {
				slog.Warn("pet image rejected", "error", err, "remote_addr", c.ClientIP())
				c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Unsupported image type"})
				return
			}
			slog.Error("pet image store failed", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error saving pet details"})
			return
		}
		imagePath = path
	}

	pet, err := h.uc.Report(c.Request.Context(), usecase.ReportInput{
		Breed:               c.PostForm("pet-breed"),
		LastSeenLocation:    c.PostForm("last-seen-location"),
		DistinctiveFeatures: c.PostForm("distinctive-features"),
		ContactInfo:         c.PostForm("contact-info"),
		ImagePath:           imagePath,
	})
	if err != nil {
		slog.Error("pet report failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error saving pet details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pet details saved successfully!",
		"pet":     pet,
	})
}

// List handles GET /getPets.
func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("pet list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Error retrieving pet details"})
		return
	}
	c.JSON(http.StatusOK, pets)
}
