package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"struct", struct {
			Message string `json:"message"`
		}{"ok"}, http.StatusCreated, `{"message":"ok"}`},
		{"slice", []int64{5272, 224}, http.StatusOK, `[5272,224]`},
		{"empty slice", []int64{}, http.StatusOK, `[]`},
		{"nil", nil, http.StatusOK, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			n, err := WriteJSON(rr, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, rr.Body.Len(), n)
		})
	}
}

func TestWriteJSON_Unencodable(t *testing.T) {
	rr := httptest.NewRecorder()

	n, err := WriteJSON(rr, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, marshalFailureBody, rr.Body.String())
}
