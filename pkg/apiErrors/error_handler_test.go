package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "parâmetro ausente", code: ErrMissingRequiredData, wantStatus: http.StatusBadRequest},
		{name: "sem dados", code: ErrNoDataFound, wantStatus: http.StatusNotFound},
		{name: "mês ausente", code: ErrMonthNotFound, wantStatus: http.StatusNotFound},
		{name: "banco de dados", code: ErrDatabaseOperation, wantStatus: http.StatusInternalServerError},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Nil(t, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	apiErr := FromError(errors.New("connection refused"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "connection refused", apiErr.Message)

	apiErr = FromError(nil, ErrDatabaseOperation)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
