package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"disc-rental/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	// Date marshals via Local(), so the exact string depends on the test
	// runner's timezone. Check the shape, not the wall-clock value.
	d := response.Date(tm)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(response.DateFormat)+2 {
		t.Errorf("expected %q-shaped value, got %s", response.DateFormat, str)
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(response.DateTimeFormat)+2 {
		t.Errorf("expected %q-shaped value, got %s", response.DateTimeFormat, str)
	}
}
