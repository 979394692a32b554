// Package worker implements the reconstruction worker's HTTP surface.
// The reconstruction itself is a placeholder: the handler deposits a
// sample model artifact where the real pipeline will eventually put its
// output, keeping the gateway contract exercisable end to end.
package worker

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/gcs"
	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// Uploader is the slice of the object store the worker needs.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	SignDownload(bucket, key string) (string, error)
}

type Handler struct {
	store           Uploader
	outputBucket    string
	sampleModelPath string
	defaultExt      string
}

func NewHandler(store Uploader, outputBucket, sampleModelPath, defaultExt string) *Handler {
	return &Handler{
		store:           store,
		outputBucket:    outputBucket,
		sampleModelPath: sampleModelPath,
		defaultExt:      defaultExt,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Reconstruct accepts a job descriptor and deposits a placeholder model.
// TODO: replace the sample-copy step with the TRELLIS reconstruction run
// once the GPU image is ready.
func (h *Handler) Reconstruct(c *gin.Context) {
	var req models.ReconstructRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.JobID == "" || req.InputGCSPath == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "job_id and input_gcs_path are required"})
		return
	}

	ext := req.OutputExt
	if ext == "" {
		ext = h.defaultExt
	}

	key := gcs.ModelKey(req.JobID, ext)

	// Without a configured store the worker still answers, pointing at
	// the bundled demo model, so local stacks work with zero cloud setup.
	if h.store == nil {
		c.JSON(http.StatusOK, models.ReconstructResponse{
			JobID:        req.JobID,
			Status:       "stubbed",
			ModelGCSPath: gcs.URI(h.outputBucket, key),
			ModelURL:     "/static/models/demo." + ext,
		})
		return
	}

	data := h.sampleModel(req.JobID)

	if err := h.store.Upload(c.Request.Context(), h.outputBucket, key, data, contentTypeFor(ext)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload model",
			Message: err.Error(),
		})
		return
	}

	modelURL, err := h.store.SignDownload(h.outputBucket, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to sign model url",
			Message: err.Error(),
		})
		return
	}

	log.Info().
		Str("job_id", req.JobID).
		Str("input", req.InputGCSPath).
		Str("key", key).
		Msg("deposited placeholder model")

	c.JSON(http.StatusOK, models.ReconstructResponse{
		JobID:        req.JobID,
		Status:       "completed",
		ModelGCSPath: gcs.URI(h.outputBucket, key),
		ModelURL:     modelURL,
	})
}

// sampleModel reads the bundled sample artifact, or fabricates a small
// placeholder when none is bundled.
func (h *Handler) sampleModel(jobID string) []byte {
	if h.sampleModelPath != "" {
		if data, err := os.ReadFile(h.sampleModelPath); err == nil {
			return data
		}
		log.Warn().Str("path", h.sampleModelPath).Msg("sample model missing, fabricating placeholder")
	}
	return []byte(fmt.Sprintf("RenderSpace placeholder model for job %s\n", jobID))
}

func contentTypeFor(ext string) string {
	switch ext {
	case "glb":
		return "model/gltf-binary"
	case "ply":
		return "application/octet-stream"
	default:
		return "application/octet-stream"
	}
}
