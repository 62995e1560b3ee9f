package objstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned by Disabled when no bucket is set up.
var ErrNotConfigured = errors.New("object storage is not configured")

// Disabled is an Uploader for deployments without a storage bucket.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return "", ErrNotConfigured
}

// Uploader stores a file in an object storage bucket and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// Client is a Supabase Storage HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	folder     string
	httpClient *http.Client
}

// NewClient creates a new Supabase Storage client.
func NewClient(baseURL, apiKey, bucket, folder string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		bucket:     bucket,
		folder:     folder,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload stores the file under <folder>/<timestamp>-<filename> and returns
// the bucket's public URL for it. The bucket must be configured public.
func (c *Client) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	objectPath := fmt.Sprintf("%s/%d-%s", c.folder, time.Now().UnixMilli(), filename)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Cache-Control", "max-age=3600")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call storage API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("storage API error: %d", resp.StatusCode)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
	return publicURL, nil
}
