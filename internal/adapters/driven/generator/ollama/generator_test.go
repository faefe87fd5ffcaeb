package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/groundkit/internal/core/ports/driven"
)

func TestNew_Defaults(t *testing.T) {
	gen := New(Config{})

	assert.Equal(t, DefaultModel, gen.ModelName())
	assert.Equal(t, DefaultBaseURL, gen.baseURL)
}

func TestGenerator_Generate(t *testing.T) {
	var gotReq generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := generateResponse{Response: "grounded answer", Done: true}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	gen := New(Config{BaseURL: server.URL, Model: "test-model"})

	result, err := gen.Generate(context.Background(), "some prompt", driven.GenerateOptions{
		MaxTokens:   256,
		Temperature: 0.3,
	})

	require.NoError(t, err)
	assert.Equal(t, "grounded answer", result)
	assert.Equal(t, "test-model", gotReq.Model)
	assert.Equal(t, "some prompt", gotReq.Prompt)
	assert.False(t, gotReq.Stream)
	require.NotNil(t, gotReq.Options)
	assert.Equal(t, 256, gotReq.Options.NumPredict)
	assert.InDelta(t, 0.3, gotReq.Options.Temperature, 0.001)
}

func TestGenerator_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	gen := New(Config{BaseURL: server.URL})

	_, err := gen.Generate(context.Background(), "prompt", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerator_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gen := New(Config{BaseURL: server.URL})

	assert.NoError(t, gen.Ping(context.Background()))
}

func TestGenerator_Ping_Unreachable(t *testing.T) {
	gen := New(Config{BaseURL: "http://127.0.0.1:1"})

	assert.Error(t, gen.Ping(context.Background()))
}

func TestGenerator_Close(t *testing.T) {
	gen := New(Config{})
	assert.NoError(t, gen.Close())
}
