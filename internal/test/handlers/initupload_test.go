package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheSupremeTaco/RenderSpace/internal/handlers"
	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

type fakeSigner struct {
	uploadCalls   int
	downloadCalls int
	lastKey       string
	lastType      string
}

func (f *fakeSigner) SignUpload(bucket, key, contentType string) (string, error) {
	f.uploadCalls++
	f.lastKey = key
	f.lastType = contentType
	return "https://signed.example.com/put/" + bucket + "/" + key, nil
}

func (f *fakeSigner) SignDownload(bucket, key string) (string, error) {
	f.downloadCalls++
	return "https://signed.example.com/get/" + bucket + "/" + key, nil
}

func newInitUploadRouter(signer handlers.URLSigner) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/init-upload", handlers.NewInitUploadHandler(signer, "test-uploads").InitUpload)
	return router
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInitUpload_SignsMatchingURLPair(t *testing.T) {
	signer := &fakeSigner{}
	router := newInitUploadRouter(signer)

	w := postJSON(router, "/api/init-upload", models.InitUploadRequest{
		Filename:    "scan.mp4",
		ContentType: "video/mp4",
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.InitUploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "gs://test-uploads/inputs/"+resp.JobID+"/scan.mp4", resp.GCSPath)

	// Both URLs must reference the same object key.
	assert.True(t, strings.HasSuffix(resp.UploadURL, signer.lastKey))
	assert.True(t, strings.HasSuffix(resp.DownloadURL, signer.lastKey))
	assert.Contains(t, signer.lastKey, resp.JobID)
	assert.Equal(t, "video/mp4", signer.lastType)
	assert.Equal(t, 1, signer.uploadCalls)
	assert.Equal(t, 1, signer.downloadCalls)
}

func TestInitUpload_DefaultsContentType(t *testing.T) {
	signer := &fakeSigner{}
	router := newInitUploadRouter(signer)

	w := postJSON(router, "/api/init-upload", models.InitUploadRequest{Filename: "scan.ply"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", signer.lastType)
}

func TestInitUpload_MissingFilename(t *testing.T) {
	signer := &fakeSigner{}
	router := newInitUploadRouter(signer)

	w := postJSON(router, "/api/init-upload", models.InitUploadRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "filename is required")
	// The storage backend must not be contacted for invalid input.
	assert.Zero(t, signer.uploadCalls)
	assert.Zero(t, signer.downloadCalls)
}

func TestInitUpload_SignerNotConfigured(t *testing.T) {
	router := newInitUploadRouter(nil)

	w := postJSON(router, "/api/init-upload", models.InitUploadRequest{Filename: "scan.mp4"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "storage signing is not configured")
}
