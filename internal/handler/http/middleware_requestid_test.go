package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"weatherfav/internal/logger"
)

// newBufferedHandler returns a Handler whose logger writes JSON entries into
// the returned buffer, so tests can inspect log output.
func newBufferedHandler(t *testing.T) (*Handler, *bytes.Buffer) {
	t.Helper()
	h := newTestHandler(nil, nil)
	buf := &bytes.Buffer{}
	h.logger = &logger.Logger{Logger: zerolog.New(buf)}
	return h, buf
}

func TestWithRequestID_GeneratesIdentifier(t *testing.T) {
	h, buf := newBufferedHandler(t)

	middleware := h.withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	got := rr.Header().Get(requestIDHeader)
	assert.NotEmpty(t, got, "a generated identifier is echoed to the client")
	assert.Contains(t, buf.String(), `"request_id":"`+got+`"`,
		"the request-scoped logger carries the same identifier")
}

func TestWithRequestID_ReusesProxySuppliedIdentifier(t *testing.T) {
	h, buf := newBufferedHandler(t)

	middleware := h.withRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "proxy-assigned-id")
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, "proxy-assigned-id", rr.Header().Get(requestIDHeader))
	assert.Contains(t, buf.String(), `"request_id":"proxy-assigned-id"`)
}
