// Package gcs wraps the Google Cloud Storage SDK with the few operations
// the gateway and worker need: signed URL issuance and object I/O.
package gcs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const (
	// UploadExpiry bounds how long a minted PUT URL stays valid. It is
	// deliberately shorter than DownloadExpiry: writes are one-shot,
	// reads may happen while the viewer stays open.
	UploadExpiry = 15 * time.Minute
	// DownloadExpiry bounds how long a minted GET URL stays valid.
	DownloadExpiry = 1 * time.Hour
)

type Client struct {
	client *storage.Client
}

// NewClient builds a storage client from a service account credentials
// file. The same credentials sign URLs and read/write objects.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("credentials file path is empty")
	}

	client, err := storage.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &Client{client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// SignUpload mints a method-scoped PUT URL for one object key. The URL is
// bound to the declared content type, so the browser must send the same
// Content-Type header it announced to /api/init-upload.
func (c *Client) SignUpload(bucket, key, contentType string) (string, error) {
	url, err := c.client.Bucket(bucket).SignedURL(key, &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      http.MethodPut,
		Expires:     time.Now().Add(UploadExpiry),
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign upload url for %s: %w", key, err)
	}
	return url, nil
}

// SignDownload mints a read-only GET URL for one object key.
func (c *Client) SignDownload(bucket, key string) (string, error) {
	url, err := c.client.Bucket(bucket).SignedURL(key, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(DownloadExpiry),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign download url for %s: %w", key, err)
	}
	return url, nil
}

// Upload writes data to bucket/key.
func (c *Client) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	w := c.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %s: %w", key, err)
	}
	return nil
}

// Download reads the full contents of bucket/key.
func (c *Client) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	r, err := c.client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", key, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}
