package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentryhq/zentry/internal/api"
	"github.com/zentryhq/zentry/internal/assistant"
	"github.com/zentryhq/zentry/internal/config"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/store"
)

// newTestServer builds a server over a seeded store. The copilot points at
// a closed port so assistant calls exercise the fallback path.
func newTestServer(t *testing.T, authToken string) (*httptest.Server, *store.Store) {
	t.Helper()

	st := store.New()
	st.Seed()

	copilot := assistant.New(config.ClaudeConfig{
		APIKey:        "test-key",
		Model:         "claude-haiku-4-5-20251001",
		ChatMaxTokens: 64,
		TaskMaxTokens: 64,
	}, slog.Default(),
		option.WithBaseURL("http://127.0.0.1:1"),
		option.WithMaxRetries(0),
	)

	srv := api.NewServer(st, copilot, nil, slog.Default(), authToken)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestServer_Healthz_NoAuthRequired(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Auth_RejectsMissingAndWrongToken(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	resp, err := http.Get(ts.URL + "/v1/deals")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/deals", "wrong", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/deals", "secret", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_DealCRUD(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/deals", "", map[string]any{
		"title":   "New Portal",
		"company": "Acme",
		"amount":  75000,
		"stage":   "qualified",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[models.Deal](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.StageQualified, created.Stage)

	resp = doJSON(t, http.MethodPatch, ts.URL+"/v1/deals/"+created.ID, "", map[string]any{
		"stage": "won",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Deal](t, resp)
	assert.Equal(t, models.StageWon, updated.Stage)
	assert.Equal(t, "New Portal", updated.Title)
	assert.Equal(t, 75000.0, updated.Amount)

	resp = doJSON(t, http.MethodPatch, ts.URL+"/v1/deals/missing", "", map[string]any{
		"stage": "won",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, ts.URL+"/v1/deals/"+created.ID, "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Deleting again stays a 200 no-op.
	resp = doJSON(t, http.MethodDelete, ts.URL+"/v1/deals/"+created.ID, "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_CreateDeal_RejectsInvalidStage(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/deals", "", map[string]any{
		"title": "Bad",
		"stage": "negotiation",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Pipeline_GroupsSeededDeals(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/deals/pipeline", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Columns []struct {
			Stage models.DealStage `json:"stage"`
			Deals []models.Deal    `json:"deals"`
		} `json:"columns"`
		Total float64 `json:"total"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Columns, 4)
	assert.Equal(t, 570000.0, body.Total)
	assert.Equal(t, models.StageLead, body.Columns[0].Stage)
	assert.Len(t, body.Columns[2].Deals, 1) // proposal
	assert.Len(t, body.Columns[3].Deals, 1) // won
}

func TestServer_TaskBoard_AndLogTime(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks/board", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cols []struct {
		Status models.TaskStatus `json:"status"`
		Tasks  []models.Task     `json:"tasks"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cols))
	require.Len(t, cols, 4)
	assert.Len(t, cols[0].Tasks, 1) // todo: Investor Pitch Deck
	assert.Len(t, cols[1].Tasks, 1) // in-progress: Review GST Compliance

	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/tasks/1/logs", "", map[string]any{
		"duration_seconds": 3661,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var logged struct {
		TotalSeconds int64  `json:"total_seconds"`
		TotalDisplay string `json:"total_display"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logged))
	assert.Equal(t, int64(3661), logged.TotalSeconds)
	assert.Equal(t, "1h 1m 1s", logged.TotalDisplay)

	resp = doJSON(t, http.MethodPost, ts.URL+"/v1/tasks/1/logs", "", map[string]any{
		"duration_seconds": 0,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_ListTasks_Upcoming(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/tasks?due=upcoming&limit=1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tasks []models.Task
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Review GST Compliance", tasks[0].Title)
}

func TestServer_Radar(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/team/3/radar", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var axes []struct {
		Subject string  `json:"subject"`
		Value   float64 `json:"value"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&axes))
	require.Len(t, axes, 4)
	assert.Equal(t, "KPI", axes[0].Subject)
	assert.Equal(t, 96.0, axes[0].Value)

	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/team/unknown/radar", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Dashboard(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/dashboard", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats struct {
		PipelineValue float64 `json:"pipeline_value"`
		DealCount     int     `json:"deal_count"`
		TeamSize      int     `json:"team_size"`
	}
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 570000.0, stats.PipelineValue)
	assert.Equal(t, 2, stats.DealCount)
	assert.Equal(t, 3, stats.TeamSize)
}

func TestServer_FileUpload(t *testing.T) {
	ts, st := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/files", "", map[string]any{
		"name":        "team_photo.png",
		"mime":        "image/png",
		"size_bytes":  1048576,
		"uploaded_by": "Anushka Iyer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	entry := decodeBody[models.FileEntry](t, resp)
	assert.Equal(t, models.FileImage, entry.Category)
	assert.Equal(t, "1.00 MB", entry.Size)

	// Seeded file plus the new upload.
	assert.Len(t, st.Files(), 2)
}

func TestServer_Chat_FallsBackWhenAssistantUnreachable(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodPost, ts.URL+"/v1/chat", "", map[string]any{
		"message": "How is the pipeline?",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, assistant.ChatFallback, body["reply"])
}

func TestServer_Status_DefaultsToSuccessWithoutTicker(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/status", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "success", body["sync"])
}

func TestServer_ListDeals_SearchAndMagnitude(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doJSON(t, http.MethodGet, ts.URL+"/v1/deals?q=cloud", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deals := decodeBody[[]models.Deal](t, resp)
	require.Len(t, deals, 1)
	assert.Equal(t, "Cloud Migration", deals[0].Title)

	resp = doJSON(t, http.MethodGet, ts.URL+"/v1/deals?magnitude=high", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deals = decodeBody[[]models.Deal](t, resp)
	require.Len(t, deals, 1)
	assert.Equal(t, "ERP Implementation", deals[0].Title)
}
