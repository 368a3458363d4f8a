package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrUnknownDomain       = "VAL_003" // Domínio de negócio desconhecido
	ErrUnknownDashboard    = "VAL_004" // Variante de dashboard desconhecida

	// Erros de upload (UPL)
	ErrUnsupportedFileType = "UPL_001" // Tipo de arquivo não suportado
	ErrEmptySpreadsheet    = "UPL_002" // Planilha sem linhas de dados
	ErrProcessingFailure   = "UPL_003" // Falha ao decodificar o arquivo
	ErrUploadInProgress    = "UPL_004" // Upload rejeitado: normalização em andamento

	// Erros de sessão (SES)
	ErrSessionNotFound     = "SES_001" // Sessão não encontrada
	ErrInvalidSessionState = "SES_002" // Operação fora de ordem no fluxo
	ErrSessionNotReady     = "SES_003" // Sessão sem dados processados

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrUnknownDomain:       http.StatusBadRequest,
	ErrUnknownDashboard:    http.StatusBadRequest,
	ErrUnsupportedFileType: http.StatusBadRequest,
	ErrEmptySpreadsheet:    http.StatusBadRequest,
	ErrProcessingFailure:   http.StatusBadRequest,
	ErrUploadInProgress:    http.StatusConflict,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrInvalidSessionState: http.StatusConflict,
	ErrSessionNotReady:     http.StatusConflict,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
