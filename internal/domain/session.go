package domain

import "time"

// SessionState identifica a etapa do fluxo de montagem do dashboard
type SessionState string

const (
	StateSelectingDomain  SessionState = "SELECTING_DOMAIN"
	StateSelectingVariant SessionState = "SELECTING_VARIANT"
	StateAwaitingUpload   SessionState = "AWAITING_UPLOAD"
	StateNormalizing      SessionState = "NORMALIZING"
	StateReady            SessionState = "READY"
)

// Session é o estado de uma sessão de análise: domínio e variante
// selecionados, a coleção de registros canônicos da última normalização
// bem-sucedida e os avisos de cobertura do upload. A coleção é substituída
// por inteiro a cada upload, nunca modificada no lugar
type Session struct {
	ID        string       `json:"id"`
	State     SessionState `json:"state"`
	Domain    string       `json:"domain,omitempty"`
	Dashboard string       `json:"dashboard,omitempty"`

	Records          []CanonicalRecord `json:"-"`
	FilterOptions    []string          `json:"filter_options,omitempty"`
	CoverageWarnings []string          `json:"coverage_warnings,omitempty"`

	// ErrorMessage guarda a falha do último upload enquanto a sessão
	// permanece em AWAITING_UPLOAD
	ErrorMessage string `json:"error_message,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}
