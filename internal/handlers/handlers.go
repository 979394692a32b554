// Package handlers implements the gateway's HTTP surface. Outbound
// dependencies are narrow interfaces so tests can substitute fakes.
package handlers

import (
	"context"

	"github.com/TheSupremeTaco/RenderSpace/internal/models"
)

// URLSigner mints time-limited, method-scoped URLs for one object key.
type URLSigner interface {
	SignUpload(bucket, key, contentType string) (string, error)
	SignDownload(bucket, key string) (string, error)
}

// Dispatcher forwards a reconstruction job to the worker.
type Dispatcher interface {
	Reconstruct(ctx context.Context, job models.ReconstructRequest) (map[string]interface{}, error)
}

// StyleSourcer produces a mood board for a free-text style query.
type StyleSourcer interface {
	SourceStyle(ctx context.Context, styleQuery string, maxItems int) (*models.MoodBoard, error)
}
