package dashboarding

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
)

// TableDecoder decodifica o conteúdo de um arquivo enviado em linhas
// brutas. É o único ponto de suspensão do fluxo de upload
type TableDecoder interface {
	Decode(ctx context.Context, filename string, r io.Reader) ([]domain.RawRow, error)
}

// QueryResult é a saída entregue à camada de apresentação: o agregado do
// estado atual de busca/filtro, os valores válidos do filtro categórico e
// os avisos de cobertura do último upload
type QueryResult struct {
	*domain.AggregateResult
	FilterOptions    []string `json:"filter_options"`
	CoverageWarnings []string `json:"coverage_warnings,omitempty"`
}

// Orchestrator conduz o fluxo seleção de domínio → seleção de variante →
// upload → normalização → consulta, sendo dono do estado das sessões
type Orchestrator interface {
	CreateSession() *domain.Session
	Session(sessionID string) (*domain.Session, error)
	SelectDomain(sessionID, domainKey string) (*domain.Session, error)
	SelectDashboard(sessionID, dashboardID string) (*domain.Session, error)
	Upload(ctx context.Context, sessionID, filename, contentType string, file io.Reader) (*domain.Session, error)
	Query(sessionID, search, categorical string) (*QueryResult, error)
	Reset(sessionID string) (*domain.Session, error)
	EvictIdle(olderThan time.Duration) int
}
