package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/gcs"
	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

type InitUploadHandler struct {
	signer      URLSigner
	inputBucket string
}

func NewInitUploadHandler(signer URLSigner, inputBucket string) *InitUploadHandler {
	return &InitUploadHandler{
		signer:      signer,
		inputBucket: inputBucket,
	}
}

// InitUpload mints a signed URL pair for a direct-to-storage upload.
// Issuing the pair touches nothing in the bucket; no object exists until
// the browser performs the PUT.
func (h *InitUploadHandler) InitUpload(c *gin.Context) {
	var req models.InitUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.Filename == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "filename is required"})
		return
	}

	if h.signer == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "storage signing is not configured",
		})
		return
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	jobID := uuid.New().String()
	key := gcs.InputKey(jobID, req.Filename)

	uploadURL, err := h.signer.SignUpload(h.inputBucket, key, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to sign upload url",
			Message: err.Error(),
		})
		return
	}

	downloadURL, err := h.signer.SignDownload(h.inputBucket, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to sign download url",
			Message: err.Error(),
		})
		return
	}

	log.Info().Str("job_id", jobID).Str("key", key).Msg("issued signed upload url pair")

	c.JSON(http.StatusOK, models.InitUploadResponse{
		JobID:       jobID,
		UploadURL:   uploadURL,
		DownloadURL: downloadURL,
		GCSPath:     gcs.URI(h.inputBucket, key),
	})
}
