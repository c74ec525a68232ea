package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_LogsStatusAndPath(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	rec := httptest.NewRecorder()

	RequestLogger(handler, zap.New(core)).ServeHTTP(rec, req)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/graphql", fields["path"])
	assert.Equal(t, int64(201), fields["status"])
}

func TestRequestLogger_DefaultsTo200(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	RequestLogger(handler, zap.New(core)).ServeHTTP(rec, req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(200), entries[0].ContextMap()["status"])
}

func TestRequestLogger_NilLogger(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	RequestLogger(handler, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
