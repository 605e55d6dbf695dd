package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.Equal(t, 0, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "200 OK", status: http.StatusOK},
		{name: "400 Bad Request", status: http.StatusBadRequest},
		{name: "403 Forbidden", status: http.StatusForbidden},
		{name: "404 Not Found", status: http.StatusNotFound},
		{name: "500 Internal Server Error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			w.WriteHeader(tt.status)

			assert.Equal(t, tt.status, w.status)
			assert.Equal(t, tt.status, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusForbidden)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusForbidden, w.status)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	_, _ = w.Write([]byte("Hair "))
	_, _ = w.Write([]byte("Saloon"))

	assert.Equal(t, 11, w.size)
	assert.Equal(t, "Hair Saloon", rr.Body.String())
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte(`{"message":"Forbidden Access"}`))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, http.StatusForbidden, w.status)
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
}
