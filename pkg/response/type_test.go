package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"chorechum/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}
	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("got %s", b)
	}
}
