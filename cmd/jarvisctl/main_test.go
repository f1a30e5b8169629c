package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/assistant/command", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		switch body.Text {
		case "delete temp files":
			conf := 0.9
			_ = json.NewEncoder(w).Encode(map[string]any{
				"message":              "This command may be risky. Do you want me to proceed? Say 'yes' to confirm.",
				"requiresConfirmation": true,
				"pendingId":            "p-1",
				"confidence":           conf,
			})
		case "busy":
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Please confirm or cancel the pending command first."})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "ran " + body.Text, "actionsExecuted": 1})
		}
	})
	mux.HandleFunc("/api/v1/assistant/confirm", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "done"})
	})
	mux.HandleFunc("/api/v1/assistant/cancel", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "There is no command waiting for confirmation."})
	})
	mux.HandleFunc("/api/v1/assistant/pending", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":              "p-1",
			"actions":         []string{"rm -rf /tmp/x"},
			"originalCommand": "delete temp files",
			"confidence":      0.9,
			"createdAt":       "2026-10-19 10:00:00",
		})
	})
	mux.HandleFunc("/api/v1/assistant/stats", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_ = json.NewEncoder(w).Encode(map[string]int{"totalCommands": 3, "totalHistory": 7, "intentPatterns": 2})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", srv.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestSay(t *testing.T) {
	srv := newTestServer(t)

	t.Run("text", func(t *testing.T) {
		out, err := run(t, srv, "say", "open", "firefox")
		require.NoError(t, err)
		assert.Equal(t, "ran open firefox\n", out)
	})

	t.Run("pending hint", func(t *testing.T) {
		out, err := run(t, srv, "say", "delete temp files")
		require.NoError(t, err)
		assert.Contains(t, out, "Pending p-1 (confidence 0.90)")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, srv, "-o", "json", "say", "open firefox")
		require.NoError(t, err)

		var got commandResp
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "ran open firefox", got.Message)
		require.NotNil(t, got.ActionsExecuted)
		assert.Equal(t, 1, *got.ActionsExecuted)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := run(t, srv, "say", "busy")
		var apiErr *apiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusConflict, apiErr.Status)
		assert.Contains(t, apiErr.Message, "pending command")
	})

	t.Run("missing text", func(t *testing.T) {
		_, err := run(t, srv, "say")
		assert.Error(t, err)
	})
}

func TestConfirmAndCancel(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv, "confirm")
	require.NoError(t, err)
	assert.Equal(t, "done\n", out)

	_, err = run(t, srv, "cancel")
	var apiErr *apiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestPending_YAML(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv, "pending", "-o", "yaml")
	require.NoError(t, err)

	var got pendingResp
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "p-1", got.ID)
	assert.Equal(t, []string{"rm -rf /tmp/x"}, got.Actions)
}

func TestStats(t *testing.T) {
	srv := newTestServer(t)

	out, err := run(t, srv, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Commands:        3")
	assert.Contains(t, out, "Intent patterns: 2")
}

func TestUnknownOutputFormat(t *testing.T) {
	srv := newTestServer(t)

	_, err := run(t, srv, "stats", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}
