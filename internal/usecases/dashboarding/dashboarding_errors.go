package dashboarding

import "errors"

// Erros específicos do fluxo de sessões de dashboard
var (
	ErrSessionNotFound  = errors.New("sessão não encontrada")
	ErrUnknownDomain    = errors.New("domínio desconhecido")
	ErrUnknownDashboard = errors.New("dashboard desconhecido para o domínio selecionado")

	// ErrInvalidState indica uma operação fora de ordem no fluxo, como
	// enviar arquivo antes de escolher domínio e dashboard
	ErrInvalidState = errors.New("operação inválida para o estado atual da sessão")

	// ErrUploadInProgress indica a rejeição de um segundo upload enquanto
	// uma normalização está em andamento na mesma sessão
	ErrUploadInProgress = errors.New("já existe um processamento de arquivo em andamento")

	// ErrNotReady indica consulta de agregados sem dados normalizados
	ErrNotReady = errors.New("sessão ainda não possui dados processados")
)
