package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_Write_Implicit200AndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	_, _ = rw.Write([]byte("hello "))
	_, _ = rw.Write([]byte("world"))

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 11, rw.size)
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_InitialState(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, rw.status)
	assert.Zero(t, rw.size)
	assert.False(t, rw.wroteHeader)
}
