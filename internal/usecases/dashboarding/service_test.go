package dashboarding

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/dashboard-analytics-api/infrastructure/decoder"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/registry"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/normalizing"
)

const (
	xlsxFilename    = "planilha.xlsx"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func newTestService(t *testing.T) (*Service, *mocks.MockTableDecoder) {
	ctrl := gomock.NewController(t)
	mockDecoder := mocks.NewMockTableDecoder(ctrl)
	service := NewService(registry.New(), mockDecoder, normalizing.NewService())
	return service, mockDecoder
}

func itRows() []domain.RawRow {
	return []domain.RawRow{
		{"valor": "1.500,00", "Mês": "3", "Ano": "2024", "Tipo": "Software", "A2_NREDUZ": "ACME"},
		{"valor": "500,00", "Mês": "3", "Ano": "2024", "Tipo": "Software", "A2_NREDUZ": "ACME"},
	}
}

// readySession percorre o fluxo completo até READY usando o decodificador mockado
func readySession(t *testing.T, service *Service, mockDecoder *mocks.MockTableDecoder) string {
	created := service.CreateSession()

	_, err := service.SelectDomain(created.ID, registry.DomainIT)
	require.NoError(t, err)

	_, err = service.SelectDashboard(created.ID, "despesas")
	require.NoError(t, err)

	mockDecoder.EXPECT().
		Decode(gomock.Any(), xlsxFilename, gomock.Any()).
		Return(itRows(), nil)

	session, err := service.Upload(context.Background(), created.ID, xlsxFilename, xlsxContentType, strings.NewReader("conteudo"))
	require.NoError(t, err)
	require.Equal(t, domain.StateReady, session.State)

	return created.ID
}

func TestService_FluxoCompleto(t *testing.T) {
	service, mockDecoder := newTestService(t)

	created := service.CreateSession()
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StateSelectingDomain, created.State)

	session, err := service.SelectDomain(created.ID, registry.DomainIT)
	require.NoError(t, err)
	assert.Equal(t, domain.StateSelectingVariant, session.State)
	assert.Equal(t, registry.DomainIT, session.Domain)

	session, err = service.SelectDashboard(created.ID, "fornecedores")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingUpload, session.State)
	assert.Equal(t, "fornecedores", session.Dashboard)

	mockDecoder.EXPECT().
		Decode(gomock.Any(), xlsxFilename, gomock.Any()).
		Return(itRows(), nil)

	session, err = service.Upload(context.Background(), created.ID, xlsxFilename, xlsxContentType, strings.NewReader("conteudo"))
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, session.State)
	assert.Equal(t, []string{"Software"}, session.FilterOptions)
	assert.Empty(t, session.ErrorMessage)

	result, err := service.Query(created.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)
	assert.Equal(t, 2000.0, result.KPIs["total_gasto"])
	assert.Equal(t, []string{"Software"}, result.FilterOptions)
}

func TestService_SelectDomain(t *testing.T) {
	tests := []struct {
		name      string
		domainKey string
		setup     func(service *Service) string
		expected  error
	}{
		{
			name:      "Domínio desconhecido é rejeitado",
			domainKey: "juridico",
			setup: func(service *Service) string {
				return service.CreateSession().ID
			},
			expected: ErrUnknownDomain,
		},
		{
			name:      "Sessão inexistente",
			domainKey: registry.DomainHR,
			setup: func(service *Service) string {
				return "nao-existe"
			},
			expected: ErrSessionNotFound,
		},
		{
			name:      "Trocar de domínio limpa a seleção anterior",
			domainKey: registry.DomainHR,
			setup: func(service *Service) string {
				created := service.CreateSession()
				_, err := service.SelectDomain(created.ID, registry.DomainIT)
				require.NoError(t, err)
				_, err = service.SelectDashboard(created.ID, "timeline")
				require.NoError(t, err)
				return created.ID
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)
			sessionID := tt.setup(service)

			session, err := service.SelectDomain(sessionID, tt.domainKey)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.StateSelectingVariant, session.State)
			assert.Equal(t, tt.domainKey, session.Domain)
			assert.Empty(t, session.Dashboard)
		})
	}
}

func TestService_SelectDashboard(t *testing.T) {
	service, _ := newTestService(t)

	created := service.CreateSession()

	// antes de escolher domínio não há variantes válidas
	_, err := service.SelectDashboard(created.ID, "despesas")
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = service.SelectDomain(created.ID, registry.DomainFinance)
	require.NoError(t, err)

	// variante de outro domínio é rejeitada
	_, err = service.SelectDashboard(created.ID, "campanhas")
	assert.ErrorIs(t, err, ErrUnknownDashboard)

	session, err := service.SelectDashboard(created.ID, "fluxo")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingUpload, session.State)
}

func TestService_Upload_Falhas(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		setup       func(t *testing.T, service *Service, mockDecoder *mocks.MockTableDecoder) string
		expected    error
		state       domain.SessionState
	}{
		{
			name:        "Tipo de arquivo não suportado é rejeitado antes do estado",
			filename:    "relatorio.pdf",
			contentType: "application/pdf",
			setup: func(t *testing.T, service *Service, _ *mocks.MockTableDecoder) string {
				return service.CreateSession().ID
			},
			expected: decoder.ErrUnsupportedFileType,
			state:    domain.StateSelectingDomain,
		},
		{
			name:        "Upload antes da variante é operação fora de ordem",
			filename:    xlsxFilename,
			contentType: xlsxContentType,
			setup: func(t *testing.T, service *Service, _ *mocks.MockTableDecoder) string {
				created := service.CreateSession()
				_, err := service.SelectDomain(created.ID, registry.DomainIT)
				require.NoError(t, err)
				return created.ID
			},
			expected: ErrInvalidState,
			state:    domain.StateSelectingVariant,
		},
		{
			name:        "Planilha vazia devolve a sessão para aguardando upload",
			filename:    xlsxFilename,
			contentType: xlsxContentType,
			setup: func(t *testing.T, service *Service, mockDecoder *mocks.MockTableDecoder) string {
				created := service.CreateSession()
				_, err := service.SelectDomain(created.ID, registry.DomainIT)
				require.NoError(t, err)
				_, err = service.SelectDashboard(created.ID, "despesas")
				require.NoError(t, err)

				mockDecoder.EXPECT().
					Decode(gomock.Any(), xlsxFilename, gomock.Any()).
					Return(nil, nil)
				return created.ID
			},
			expected: normalizing.ErrEmptyInput,
			state:    domain.StateAwaitingUpload,
		},
		{
			name:        "Falha de decodificação retém a mensagem na sessão",
			filename:    xlsxFilename,
			contentType: xlsxContentType,
			setup: func(t *testing.T, service *Service, mockDecoder *mocks.MockTableDecoder) string {
				created := service.CreateSession()
				_, err := service.SelectDomain(created.ID, registry.DomainIT)
				require.NoError(t, err)
				_, err = service.SelectDashboard(created.ID, "despesas")
				require.NoError(t, err)

				mockDecoder.EXPECT().
					Decode(gomock.Any(), xlsxFilename, gomock.Any()).
					Return(nil, assert.AnError)
				return created.ID
			},
			expected: assert.AnError,
			state:    domain.StateAwaitingUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockDecoder := newTestService(t)
			sessionID := tt.setup(t, service, mockDecoder)

			_, err := service.Upload(context.Background(), sessionID, tt.filename, tt.contentType, strings.NewReader("conteudo"))
			assert.ErrorIs(t, err, tt.expected)

			session, err := service.Session(sessionID)
			require.NoError(t, err)
			assert.Equal(t, tt.state, session.State)

			if tt.state == domain.StateAwaitingUpload {
				assert.NotEmpty(t, session.ErrorMessage)
			}
		})
	}
}

func TestService_Upload_RejeitaUploadConcorrente(t *testing.T) {
	service, mockDecoder := newTestService(t)

	created := service.CreateSession()
	_, err := service.SelectDomain(created.ID, registry.DomainIT)
	require.NoError(t, err)
	_, err = service.SelectDashboard(created.ID, "despesas")
	require.NoError(t, err)

	// o primeiro upload dispara o segundo no meio da decodificação
	mockDecoder.EXPECT().
		Decode(gomock.Any(), xlsxFilename, gomock.Any()).
		DoAndReturn(func(ctx context.Context, filename string, r io.Reader) ([]domain.RawRow, error) {
			_, uploadErr := service.Upload(ctx, created.ID, xlsxFilename, xlsxContentType, strings.NewReader("outro"))
			assert.ErrorIs(t, uploadErr, ErrUploadInProgress)

			// seleções também são bloqueadas durante a normalização
			_, selectErr := service.SelectDomain(created.ID, registry.DomainHR)
			assert.ErrorIs(t, selectErr, ErrUploadInProgress)

			return itRows(), nil
		})

	session, err := service.Upload(context.Background(), created.ID, xlsxFilename, xlsxContentType, strings.NewReader("conteudo"))
	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, session.State)
}

func TestService_Upload_ResetDuranteNormalizacaoDescartaResultado(t *testing.T) {
	service, mockDecoder := newTestService(t)

	created := service.CreateSession()
	_, err := service.SelectDomain(created.ID, registry.DomainIT)
	require.NoError(t, err)
	_, err = service.SelectDashboard(created.ID, "despesas")
	require.NoError(t, err)

	mockDecoder.EXPECT().
		Decode(gomock.Any(), xlsxFilename, gomock.Any()).
		DoAndReturn(func(ctx context.Context, filename string, r io.Reader) ([]domain.RawRow, error) {
			_, resetErr := service.Reset(created.ID)
			require.NoError(t, resetErr)
			return itRows(), nil
		})

	session, err := service.Upload(context.Background(), created.ID, xlsxFilename, xlsxContentType, strings.NewReader("conteudo"))
	require.NoError(t, err)

	// o resultado da normalização em voo foi descartado pelo reset
	assert.Equal(t, domain.StateSelectingDomain, session.State)
	assert.Empty(t, session.Domain)

	_, err = service.Query(created.ID, "", "")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestService_QueryExigeDadosProcessados(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Query("nao-existe", "", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	created := service.CreateSession()
	_, err = service.Query(created.ID, "", "")
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestService_QueryComFiltros(t *testing.T) {
	service, mockDecoder := newTestService(t)
	sessionID := readySession(t, service, mockDecoder)

	result, err := service.Query(sessionID, "acme", registry.OtherTypes)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RecordCount)

	result, err = service.Query(sessionID, "acme", "Software")
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecordCount)

	// as opções de filtro vêm da coleção original, não da filtrada
	assert.Equal(t, []string{"Software"}, result.FilterOptions)
}

func TestService_Reset(t *testing.T) {
	service, mockDecoder := newTestService(t)
	sessionID := readySession(t, service, mockDecoder)

	session, err := service.Reset(sessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.StateSelectingDomain, session.State)
	assert.Empty(t, session.Domain)
	assert.Empty(t, session.Dashboard)
	assert.Empty(t, session.FilterOptions)
	assert.Empty(t, session.ErrorMessage)

	_, err = service.Query(sessionID, "", "")
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = service.Reset("nao-existe")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_EvictIdle(t *testing.T) {
	service, _ := newTestService(t)

	idle := service.CreateSession()
	active := service.CreateSession()
	processing := service.CreateSession()

	service.mu.Lock()
	service.sessions[idle.ID].UpdatedAt = time.Now().Add(-2 * time.Hour)
	service.sessions[processing.ID].UpdatedAt = time.Now().Add(-2 * time.Hour)
	service.sessions[processing.ID].State = domain.StateNormalizing
	service.mu.Unlock()

	evicted := service.EvictIdle(time.Hour)
	assert.Equal(t, 1, evicted)

	_, err := service.Session(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// a sessão ativa e a que ainda normaliza permanecem
	_, err = service.Session(active.ID)
	assert.NoError(t, err)
	_, err = service.Session(processing.ID)
	assert.NoError(t, err)
}
