package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/TheSupremeTaco/RenderSpace/internal/models"
	"github.com/TheSupremeTaco/RenderSpace/internal/workerclient"
)

type JobsHandler struct {
	dispatcher Dispatcher
}

func NewJobsHandler(dispatcher Dispatcher) *JobsHandler {
	return &JobsHandler{dispatcher: dispatcher}
}

// StartJob relays an uploaded capture to the reconstruction worker. A
// nil dispatcher means WORKER_URL was never set: that fails fast with a
// configuration error before any network call.
func (h *JobsHandler) StartJob(c *gin.Context) {
	var req models.StartJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.JobID == "" || req.GCSPath == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "jobId and gcsPath are required"})
		return
	}

	if h.dispatcher == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "worker endpoint is not configured",
		})
		return
	}

	result, err := h.dispatcher.Reconstruct(c.Request.Context(), models.ReconstructRequest{
		JobID:        req.JobID,
		InputGCSPath: req.GCSPath,
	})
	if err != nil {
		var statusErr *workerclient.StatusError
		if errors.As(err, &statusErr) {
			log.Error().
				Int("worker_status", statusErr.StatusCode).
				Str("job_id", req.JobID).
				Msg("worker rejected the job")
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "worker rejected the job",
				Message: fmt.Sprintf("worker returned status %d: %s", statusErr.StatusCode, statusErr.Body),
			})
			return
		}

		log.Error().Err(err).Str("job_id", req.JobID).Msg("worker unreachable")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "worker unreachable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.StartJobResponse{
		Status: "started",
		JobID:  req.JobID,
		Worker: result,
	})
}
