package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, getLogLevel("warning"))
	assert.Equal(t, slog.LevelError, getLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, getLogLevel(""))
}

func TestLogBookingCreatedWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}, true)

	l.LogBookingCreated(context.Background(), "b-1", "Desert Safari", 300)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Booking Created", entry["msg"])
	assert.Equal(t, "b-1", entry["booking_id"])
	assert.Equal(t, "Desert Safari", entry["trip_title"])
	assert.Equal(t, float64(300), entry["total_price"])
}

func TestLogHTTPRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := NewWithWriter(&buf, nil, true)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/trips?lang=ar", nil)
	c.Status(http.StatusOK)

	l.LogHTTPRequest(c, 15*time.Millisecond)

	assert.Contains(t, buf.String(), `"path":"/api/trips"`)
	assert.Contains(t, buf.String(), `"query":"lang=ar"`)
}

func TestWithErrorAddsField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, nil, true).WithError(errors.New("boom"))

	l.Info("failed")

	assert.Contains(t, buf.String(), `"error":"boom"`)
}
