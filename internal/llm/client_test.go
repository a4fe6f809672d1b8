package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaClient_GenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.False(t, req.Stream)

		json.NewEncoder(w).Encode(ollamaResponse{
			Model:    "test-model",
			Response: `{"topic": "Go"}`,
		})
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.Model = "test-model"
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:       TaskPlanDraft,
		UserPrompt: "draft a plan",
	})

	require.NoError(t, err)
	assert.Equal(t, `{"topic": "Go"}`, resp.Text)
	assert.Equal(t, "test-model", resp.Model)
}

func TestOllamaClient_Non200IsRetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 1

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskPlanDraft, UserPrompt: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestOllamaClient_UnreachableServer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:1" // nothing listens here
	cfg.MaxRetries = 0
	cfg.Tasks[TaskPlanDraft] = TaskConfig{TimeoutMs: 2000}

	client := NewOllamaClient(cfg, NoopObserver{})
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskPlanDraft, UserPrompt: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaClient_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.MaxRetries = 0

	client := NewOllamaClient(cfg, obs)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskPlanFix, UserPrompt: "x"})

	require.Error(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, TaskPlanFix, events[0].Task)
}

func TestOllamaClient_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Endpoint = srv.URL

	client := NewOllamaClient(cfg, NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	cfg.Endpoint = "http://127.0.0.1:1"
	client = NewOllamaClient(cfg, NoopObserver{})
	assert.False(t, client.Available(context.Background()))
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
