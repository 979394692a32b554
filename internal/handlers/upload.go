package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/gcs"
	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// allowedExtensions is the allowlist for direct-to-disk uploads. Room
// captures arrive as photos, videos or zipped image sets.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".heic": true,
	".mp4":  true,
	".mov":  true,
	".zip":  true,
	".ply":  true,
}

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// Upload accepts a multipart room capture and writes it under a fresh
// job-scoped directory on local disk. This is the no-cloud path; the
// signed-URL flow in InitUploadHandler is the production one.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file field"})
		return
	}

	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "empty filename"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "unsupported file type",
			Message: "extension " + ext + " is not allowed",
		})
		return
	}

	jobID := uuid.New().String()
	filename := gcs.SanitizeFilename(file.Filename)

	dir := filepath.Join(h.uploadDir, jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store upload",
			Message: err.Error(),
		})
		return
	}

	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store upload",
			Message: err.Error(),
		})
		return
	}

	log.Info().
		Str("job_id", jobID).
		Str("filename", filename).
		Int64("size", file.Size).
		Msg("stored local upload")

	c.JSON(http.StatusOK, models.UploadResponse{
		JobID:    jobID,
		ModelURL: "/uploads/" + jobID + "/" + filename,
	})
}
