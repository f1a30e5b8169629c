package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"jarvis-assistant/pkg/response"
)

func TestTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2026, 10, 19, 8, 5, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"datetime", response.DateTime(tm), tm.Local().Format(response.DateTimeFormat)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if got := string(b); got != `"`+tt.want+`"` {
				t.Errorf("got %s, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorBodyJSON(t *testing.T) {
	b, err := json.Marshal(response.ErrorBody{Error: "Please say something."})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"error":"Please say something."}` {
		t.Errorf("unexpected body %s", b)
	}
}
