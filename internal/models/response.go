package models

type UploadResponse struct {
	JobID    string `json:"jobId"`
	ModelURL string `json:"modelUrl"`
}

type InitUploadResponse struct {
	JobID       string `json:"jobId"`
	UploadURL   string `json:"uploadUrl"`
	DownloadURL string `json:"downloadUrl"`
	GCSPath     string `json:"gcsPath"`
}

type StartJobResponse struct {
	Status string `json:"status"`
	JobID  string `json:"jobId"`
	// Worker carries the worker's response body as-is.
	Worker map[string]interface{} `json:"worker"`
}

type Project struct {
	ID         string `json:"id"`
	RoomType   string `json:"roomType"`
	RoomSize   string `json:"roomSize"`
	Style      string `json:"style"`
	StyleQuery string `json:"styleQuery"`
}

type RoomSetupResponse struct {
	Project   Project   `json:"project"`
	MoodBoard MoodBoard `json:"moodBoard"`
}

// MoodBoard is the style label plus product list shown to the frontend.
type MoodBoard struct {
	Style    string    `json:"style"`
	Products []Product `json:"products"`
}

type Product struct {
	Title      string   `json:"title"`
	Retailer   string   `json:"retailer"`
	ProductURL string   `json:"product_url"`
	ImageURL   string   `json:"image_url"`
	Price      *float64 `json:"price"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
}

// ReconstructResponse is the worker's answer to a reconstruction job.
type ReconstructResponse struct {
	JobID        string `json:"job_id"`
	Status       string `json:"status"`
	ModelGCSPath string `json:"model_gcs_path"`
	ModelURL     string `json:"model_url"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
