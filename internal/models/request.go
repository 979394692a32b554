package models

type InitUploadRequest struct {
	// Filename is the name of the object the browser wants to upload.
	Filename string `json:"filename"`
	// ContentType the browser will send on the PUT. Defaults to
	// application/octet-stream when empty.
	ContentType string `json:"contentType,omitempty"`
}

type StartJobRequest struct {
	JobID   string `json:"jobId"`
	GCSPath string `json:"gcsPath"`
}

type RoomSetupRequest struct {
	RoomType string `json:"roomType"`
	RoomSize string `json:"roomSize,omitempty"`
	Style    string `json:"style"`
}

// ReconstructRequest is the payload the gateway forwards to the worker.
type ReconstructRequest struct {
	JobID        string `json:"job_id"`
	InputGCSPath string `json:"input_gcs_path"`
	OutputExt    string `json:"output_ext,omitempty"`
}
