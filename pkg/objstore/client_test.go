package objstore_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"disc-rental/pkg/objstore"
)

func TestUpload(t *testing.T) {
	var gotAuth, gotContentType, gotPath string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Key":"images/items/cover.png"}`))
	}))
	defer ts.Close()

	c := objstore.NewClient(ts.URL, "svc-key", "images", "items")

	publicURL, err := c.Upload(context.Background(), "cover.png", "image/png", strings.NewReader("fake-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if gotAuth != "Bearer svc-key" {
		t.Errorf("unexpected auth header: %q", gotAuth)
	}
	if gotContentType != "image/png" {
		t.Errorf("unexpected content type: %q", gotContentType)
	}
	if !strings.HasPrefix(gotPath, "/storage/v1/object/images/") {
		t.Errorf("unexpected upload path: %q", gotPath)
	}
	if !strings.Contains(publicURL, "/storage/v1/object/public/images/items/") {
		t.Errorf("unexpected public URL: %q", publicURL)
	}
	if !strings.HasSuffix(publicURL, "-cover.png") {
		t.Errorf("public URL should keep the original filename suffix: %q", publicURL)
	}
}

func TestUpload_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	c := objstore.NewClient(ts.URL, "bad-key", "images", "items")

	if _, err := c.Upload(context.Background(), "cover.png", "image/png", strings.NewReader("x")); err == nil {
		t.Fatal("expected error on non-2xx status")
	}
}
