package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/dashboard-analytics-api/infrastructure/decoder"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/normalizing"
	"github.com/vfg2006/dashboard-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/dashboard-analytics-api/pkg/log"
)

// CreateSession abre uma nova sessão de análise
func CreateSession(service dashboarding.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := service.CreateSession()
		writeJSON(w, http.StatusCreated, session)
	})
}

// GetSession retorna o estado atual da sessão
func GetSession(service dashboarding.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.Session(id)
		if err != nil {
			writeOrchestratorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	})
}

// SelectDomain registra a escolha do domínio de negócio da sessão
func SelectDomain(service dashboarding.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body struct {
			Domain string `json:"domain"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Domain == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o domínio desejado", nil)
			return
		}

		session, err := service.SelectDomain(id, body.Domain)
		if err != nil {
			logger.WithField("domain", body.Domain).WithError(err).Warn("Falha ao selecionar domínio")
			writeOrchestratorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	})
}

// SelectDashboard registra a escolha da variante de dashboard
func SelectDashboard(service dashboarding.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body struct {
			Dashboard string `json:"dashboard"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Dashboard == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o dashboard desejado", nil)
			return
		}

		session, err := service.SelectDashboard(id, body.Dashboard)
		if err != nil {
			logger.WithField("dashboard", body.Dashboard).WithError(err).Warn("Falha ao selecionar dashboard")
			writeOrchestratorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	})
}

// UploadFile recebe a planilha da sessão via multipart e dispara a
// normalização. O corpo é limitado a maxUploadBytes
func UploadFile(service dashboarding.Orchestrator, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("Upload sem arquivo válido")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Envie o arquivo no campo 'file'", nil)
			return
		}
		defer file.Close()

		session, err := service.Upload(r.Context(), id, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			logger.WithField("filename", header.Filename).WithError(err).Warn("Falha no processamento do upload")
			writeOrchestratorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	})
}

// QueryDashboard aplica busca e filtro categórico e devolve o agregado do
// domínio para o estado atual da sessão
func QueryDashboard(service dashboarding.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		search := r.URL.Query().Get("search")
		filter := r.URL.Query().Get("filter")

		result, err := service.Query(id, search, filter)
		if err != nil {
			writeOrchestratorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

// ResetSession devolve a sessão ao início do fluxo
func ResetSession(service dashboarding.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		session, err := service.Reset(id)
		if err != nil {
			writeOrchestratorError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	})
}

// writeOrchestratorError converte os erros do orquestrador no envelope
// padronizado da API
func writeOrchestratorError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrSessionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotFound, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrUnknownDomain):
		apiErrors.WriteError(w, apiErrors.ErrUnknownDomain, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrUnknownDashboard):
		apiErrors.WriteError(w, apiErrors.ErrUnknownDashboard, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrUploadInProgress):
		apiErrors.WriteError(w, apiErrors.ErrUploadInProgress, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrInvalidState):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSessionState, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrNotReady):
		apiErrors.WriteError(w, apiErrors.ErrSessionNotReady, err.Error(), nil)
	case errors.Is(err, decoder.ErrUnsupportedFileType):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedFileType, err.Error(), nil)
	case errors.Is(err, normalizing.ErrEmptyInput):
		apiErrors.WriteError(w, apiErrors.ErrEmptySpreadsheet, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Falha ao processar arquivo enviado")
		apiErrors.WriteError(w, apiErrors.ErrProcessingFailure, err.Error(), nil)
	}
}
