package workerclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSupremeTaco/RenderSpace/internal/models"
	"github.com/TheSupremeTaco/RenderSpace/internal/workerclient"
)

func TestReconstruct_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reconstruct", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.ReconstructRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "job-1", req.JobID)
		assert.Equal(t, "gs://test-uploads/inputs/job-1/scan.mp4", req.InputGCSPath)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"job_id": "job-1",
			"status": "completed",
		})
	}))
	defer server.Close()

	client := workerclient.NewClient(server.URL)
	result, err := client.Reconstruct(context.Background(), models.ReconstructRequest{
		JobID:        "job-1",
		InputGCSPath: "gs://test-uploads/inputs/job-1/scan.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", result["status"])
}

func TestReconstruct_TrailingSlashInBaseURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reconstruct", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := workerclient.NewClient(server.URL + "/")
	_, err := client.Reconstruct(context.Background(), models.ReconstructRequest{JobID: "x", InputGCSPath: "gs://b/k"})
	assert.NoError(t, err)
}

func TestReconstruct_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"reconstruction failed"}`))
	}))
	defer server.Close()

	client := workerclient.NewClient(server.URL)
	_, err := client.Reconstruct(context.Background(), models.ReconstructRequest{JobID: "x", InputGCSPath: "gs://b/k"})

	var statusErr *workerclient.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, `{"detail":"reconstruction failed"}`, statusErr.Body)
	assert.Contains(t, err.Error(), "status 500")
}

func TestReconstruct_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := workerclient.NewClient(server.URL)
	_, err := client.Reconstruct(context.Background(), models.ReconstructRequest{JobID: "x", InputGCSPath: "gs://b/k"})

	require.Error(t, err)
	var statusErr *workerclient.StatusError
	assert.NotErrorAs(t, err, &statusErr)
}

func TestReconstruct_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := workerclient.NewClient(server.URL)
	_, err := client.Reconstruct(context.Background(), models.ReconstructRequest{JobID: "x", InputGCSPath: "gs://b/k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}
