package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(context.Context) error {
	return f.err
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(fakePinger{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	NewHandler(fakePinger{err: errors.New("dial tcp: refused")}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"unavailable"}`, w.Body.String())
}
