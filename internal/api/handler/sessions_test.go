package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/dashboard-analytics-api/infrastructure/decoder"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/normalizing"
	"github.com/vfg2006/dashboard-analytics-api/pkg/apiErrors"
)

func TestWriteOrchestratorError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{
			name:   "Sessão não encontrada",
			err:    dashboarding.ErrSessionNotFound,
			code:   apiErrors.ErrSessionNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "Domínio desconhecido",
			err:    dashboarding.ErrUnknownDomain,
			code:   apiErrors.ErrUnknownDomain,
			status: http.StatusBadRequest,
		},
		{
			name:   "Dashboard desconhecido",
			err:    dashboarding.ErrUnknownDashboard,
			code:   apiErrors.ErrUnknownDashboard,
			status: http.StatusBadRequest,
		},
		{
			name:   "Upload em andamento",
			err:    dashboarding.ErrUploadInProgress,
			code:   apiErrors.ErrUploadInProgress,
			status: http.StatusConflict,
		},
		{
			name:   "Operação fora de ordem",
			err:    dashboarding.ErrInvalidState,
			code:   apiErrors.ErrInvalidSessionState,
			status: http.StatusConflict,
		},
		{
			name:   "Consulta sem dados processados",
			err:    dashboarding.ErrNotReady,
			code:   apiErrors.ErrSessionNotReady,
			status: http.StatusConflict,
		},
		{
			name:   "Tipo de arquivo não suportado",
			err:    decoder.ErrUnsupportedFileType,
			code:   apiErrors.ErrUnsupportedFileType,
			status: http.StatusBadRequest,
		},
		{
			name:   "Planilha vazia",
			err:    normalizing.ErrEmptyInput,
			code:   apiErrors.ErrEmptySpreadsheet,
			status: http.StatusBadRequest,
		},
		{
			name:   "Falha genérica de processamento",
			err:    assert.AnError,
			code:   apiErrors.ErrProcessingFailure,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/v1/sessions/abc/dashboard", nil)

			writeOrchestratorError(recorder, request, tt.err)

			assert.Equal(t, tt.status, recorder.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.err.Error(), apiErr.Message)
		})
	}
}
