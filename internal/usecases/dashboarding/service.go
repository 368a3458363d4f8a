// Package dashboarding implementa o orquestrador de sessões de análise:
// a máquina de estados que liga seleção de domínio, upload, normalização,
// filtro e agregação
package dashboarding

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-analytics-api/infrastructure/decoder"
	"github.com/vfg2006/dashboard-analytics-api/internal/domain"
	"github.com/vfg2006/dashboard-analytics-api/internal/registry"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/filtering"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/normalizing"
	"github.com/vfg2006/dashboard-analytics-api/pkg/utils"
)

// Service implementa Orchestrator mantendo as sessões em memória
type Service struct {
	registry   *registry.Registry
	decoder    TableDecoder
	normalizer normalizing.Normalizer

	mu       sync.RWMutex
	sessions map[string]*session

	now func() time.Time
}

// session embute o estado externo mais o controle interno de concorrência
// do upload. uploadSeq invalida o resultado de uma normalização em voo
// quando a sessão é resetada no meio do caminho
type session struct {
	domain.Session
	uploadSeq int
}

// NewService cria uma nova instância do orquestrador de dashboards
func NewService(reg *registry.Registry, tableDecoder TableDecoder, normalizer normalizing.Normalizer) *Service {
	return &Service{
		registry:   reg,
		decoder:    tableDecoder,
		normalizer: normalizer,
		sessions:   make(map[string]*session),
		now:        time.Now,
	}
}

// CreateSession abre uma sessão nova em seleção de domínio
func (s *Service) CreateSession() *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &session{
		Session: domain.Session{
			ID:        uuid.New().String(),
			State:     domain.StateSelectingDomain,
			UpdatedAt: s.now(),
		},
	}
	s.sessions[entry.ID] = entry

	logrus.WithField("session_id", entry.ID).Info("Sessão de análise criada")
	return snapshot(entry)
}

// Session retorna o estado atual da sessão
func (s *Service) Session(sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return snapshot(entry), nil
}

// SelectDomain valida a chave do domínio e zera tudo que vem depois dela:
// variante, registros e erro do upload anterior
func (s *Service) SelectDomain(sessionID, domainKey string) (*domain.Session, error) {
	if _, ok := s.registry.Get(domainKey); !ok {
		return nil, ErrUnknownDomain
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.State == domain.StateNormalizing {
		return nil, ErrUploadInProgress
	}

	entry.Domain = domainKey
	entry.Dashboard = ""
	entry.Records = nil
	entry.FilterOptions = nil
	entry.CoverageWarnings = nil
	entry.ErrorMessage = ""
	entry.State = domain.StateSelectingVariant
	entry.UpdatedAt = s.now()

	return snapshot(entry), nil
}

// SelectDashboard escolhe a variante de dashboard e libera o upload
func (s *Service) SelectDashboard(sessionID, dashboardID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.State == domain.StateNormalizing {
		return nil, ErrUploadInProgress
	}
	if entry.Domain == "" {
		return nil, ErrInvalidState
	}

	descriptor := s.registry.MustGet(entry.Domain)
	if !hasDashboard(descriptor, dashboardID) {
		return nil, ErrUnknownDashboard
	}

	entry.Dashboard = dashboardID
	entry.State = domain.StateAwaitingUpload
	entry.UpdatedAt = s.now()

	return snapshot(entry), nil
}

// Upload valida o tipo declarado do arquivo, decodifica e normaliza. Um
// segundo upload com normalização em andamento é rejeitado; a falha de
// decodificação ou a planilha vazia devolvem a sessão para aguardando
// upload com a mensagem retida
func (s *Service) Upload(ctx context.Context, sessionID, filename, contentType string, file io.Reader) (*domain.Session, error) {
	if !decoder.Supported(filename, contentType) {
		return nil, decoder.ErrUnsupportedFileType
	}

	s.mu.Lock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	if entry.State == domain.StateNormalizing {
		s.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	if entry.State != domain.StateAwaitingUpload {
		s.mu.Unlock()
		return nil, ErrInvalidState
	}

	entry.State = domain.StateNormalizing
	entry.ErrorMessage = ""
	entry.UpdatedAt = s.now()
	entry.uploadSeq++
	seq := entry.uploadSeq
	descriptor := s.registry.MustGet(entry.Domain)
	s.mu.Unlock()

	uploadID, _ := utils.GenerateID()
	logger := logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"upload_id":  uploadID,
		"domain":     descriptor.Key,
		"filename":   filename,
	})
	logger.Info("Processando arquivo enviado")

	rows, err := s.decoder.Decode(ctx, filename, file)
	if err != nil {
		logger.WithError(err).Warn("Falha ao decodificar o arquivo")
		return s.failUpload(sessionID, seq, err)
	}

	records, warnings, err := s.normalizer.Normalize(rows, descriptor)
	if err != nil {
		logger.WithError(err).Warn("Falha ao normalizar o arquivo")
		return s.failUpload(sessionID, seq, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok = s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.uploadSeq != seq || entry.State != domain.StateNormalizing {
		// a sessão foi resetada durante a normalização; o resultado é descartado
		return snapshot(entry), nil
	}

	entry.Records = records
	entry.FilterOptions = filtering.Options(records, descriptor)
	entry.CoverageWarnings = warnings
	entry.State = domain.StateReady
	entry.UpdatedAt = s.now()

	logger.WithFields(logrus.Fields{
		"records":           len(records),
		"coverage_warnings": len(warnings),
	}).Info("Arquivo normalizado com sucesso")

	return snapshot(entry), nil
}

// Query filtra e agrega a coleção atual sem mudar o estado da sessão
func (s *Service) Query(sessionID, search, categorical string) (*QueryResult, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return nil, ErrSessionNotFound
	}
	if entry.State != domain.StateReady {
		s.mu.RUnlock()
		return nil, ErrNotReady
	}

	records := entry.Records
	options := entry.FilterOptions
	warnings := entry.CoverageWarnings
	descriptor := s.registry.MustGet(entry.Domain)
	s.mu.RUnlock()

	filtered := filtering.Apply(records, search, categorical, descriptor)

	return &QueryResult{
		AggregateResult:  aggregating.Aggregate(filtered, descriptor),
		FilterOptions:    options,
		CoverageWarnings: warnings,
	}, nil
}

// Reset devolve a sessão incondicionalmente para a seleção de domínio,
// limpando todo o estado acumulado
func (s *Service) Reset(sessionID string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	entry.uploadSeq++
	entry.Domain = ""
	entry.Dashboard = ""
	entry.Records = nil
	entry.FilterOptions = nil
	entry.CoverageWarnings = nil
	entry.ErrorMessage = ""
	entry.State = domain.StateSelectingDomain
	entry.UpdatedAt = s.now()

	return snapshot(entry), nil
}

// EvictIdle remove sessões paradas há mais tempo que o limite, preservando
// as que ainda têm normalização em andamento. Retorna quantas saíram
func (s *Service) EvictIdle(olderThan time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-olderThan)
	evicted := 0
	for id, entry := range s.sessions {
		if entry.State == domain.StateNormalizing {
			continue
		}
		if entry.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// failUpload devolve a sessão para aguardando upload com a mensagem de
// falha retida e sem coleção de registros, repassando a causa ao chamador
func (s *Service) failUpload(sessionID string, seq int, cause error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if entry.uploadSeq != seq || entry.State != domain.StateNormalizing {
		return snapshot(entry), cause
	}

	entry.State = domain.StateAwaitingUpload
	entry.ErrorMessage = fmt.Sprintf("Erro ao processar arquivo: %s", cause.Error())
	entry.Records = nil
	entry.FilterOptions = nil
	entry.CoverageWarnings = nil
	entry.UpdatedAt = s.now()

	return snapshot(entry), cause
}

func hasDashboard(descriptor *domain.DomainDescriptor, dashboardID string) bool {
	for _, variant := range descriptor.Dashboards {
		if variant.ID == dashboardID {
			return true
		}
	}
	return false
}

func snapshot(entry *session) *domain.Session {
	copied := entry.Session
	return &copied
}
