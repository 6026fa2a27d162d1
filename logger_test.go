package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewLogger(LogOptions{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.With(map[string]any{"theme": "dark"}).Info("page written")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "page written", entry["message"])
	require.Equal(t, "dark", entry["theme"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewLogger(LogOptions{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := NewLogger(LogOptions{Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("template exploded"), "render page")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "template exploded", entry["error"])
}

func TestLoggerRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, err := NewLogger(LogOptions{Level: "loud"})
	require.Error(t, err)
}

func TestRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := NewLogger(LogOptions{Writer: buf})
	require.NoError(t, err)

	r := gin.New()
	r.Use(requestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "pong") })
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "request", entry["message"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/ping", entry["path"])
	require.EqualValues(t, http.StatusTeapot, entry["status"])
}
