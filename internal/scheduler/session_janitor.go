// Package scheduler agenda tarefas de manutenção em segundo plano
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/dashboard-analytics-api/internal/config"
)

// SessionEvicter remove sessões ociosas, devolvendo quantas saíram
type SessionEvicter interface {
	EvictIdle(olderThan time.Duration) int
}

// SessionJanitorConfig representa a configuração da limpeza de sessões
type SessionJanitorConfig struct {
	CronSchedule string
	IdleTTL      time.Duration
	Enabled      bool
}

// SessionJanitorService remove periodicamente sessões ociosas do
// orquestrador, evitando acúmulo de coleções de registros em memória
type SessionJanitorService struct {
	scheduler    *gocron.Scheduler
	config       SessionJanitorConfig
	orchestrator SessionEvicter
	running      bool
	mutex        sync.Mutex
}

// NewSessionJanitorService cria uma nova instância do serviço de limpeza de sessões
func NewSessionJanitorService(orchestrator SessionEvicter, appConfig *config.Config) *SessionJanitorService {
	janitorConfig := SessionJanitorConfig{
		CronSchedule: appConfig.SessionJanitor.CronSchedule,
		IdleTTL:      time.Duration(appConfig.SessionJanitor.IdleTTLMinutes) * time.Minute,
		Enabled:      appConfig.SessionJanitor.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": janitorConfig.CronSchedule,
		"idle_ttl":      janitorConfig.IdleTTL,
		"enabled":       janitorConfig.Enabled,
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionJanitorService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       janitorConfig,
		orchestrator: orchestrator,
	}
}

// Start inicia o agendador
func (s *SessionJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runOnce()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()

	// Encerra o agendador junto com o contexto da aplicação
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop interrompe o agendador
func (s *SessionJanitorService) Stop() {
	s.scheduler.Stop()
}

// RunNow dispara uma limpeza imediata, fora do agendamento
func (s *SessionJanitorService) RunNow() {
	s.runOnce()
}

func (s *SessionJanitorService) runOnce() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Debug("Limpeza de sessões já em andamento, pulando execução")
		return
	}
	s.running = true
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	evicted := s.orchestrator.EvictIdle(s.config.IdleTTL)
	if evicted > 0 {
		logrus.WithField("sessions", evicted).Info("Sessões ociosas removidas")
	}
}
