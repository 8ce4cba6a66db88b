package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-mahalle/fraudguard/internal/pkg/errors"
)

func TestWriteList(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteList(rec, []string{}, 0))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"items":[],"count":0}}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	appErr := errors.InvalidTransition("Alert ALT-002 is not active", nil)
	require.NoError(t, WriteError(rec, appErr))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, errors.ErrCodeInvalidTransition, resp.Error.Code)
	assert.Equal(t, "Alert ALT-002 is not active", resp.Error.Message)
}
