package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Defaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Zero(t, w.BytesWritten())
	assert.False(t, w.HeaderWritten())
}

func TestWrap_DoesNotDoubleWrap(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	assert.Same(t, w, Wrap(w))
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusNoContent, http.StatusNotFound, http.StatusInternalServerError} {
		rec := httptest.NewRecorder()
		w := Wrap(rec)
		w.WriteHeader(code)

		assert.Equal(t, code, w.StatusCode())
		assert.Equal(t, code, rec.Code)
	}
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusConflict)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusConflict, w.StatusCode())
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestResponseWriter_WriteCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	n, err := w.Write([]byte(`{"message":`))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	_, err = w.Write([]byte(`"ok"}`))
	require.NoError(t, err)

	assert.Equal(t, 16, w.BytesWritten())
	assert.True(t, w.HeaderWritten())
	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, `{"message":"ok"}`, rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, w.HeaderWritten())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Same(t, rec, Wrap(rec).Unwrap())
}
