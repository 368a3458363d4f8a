package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-analytics-api/infrastructure/decoder"
	"github.com/vfg2006/dashboard-analytics-api/internal/api"
	"github.com/vfg2006/dashboard-analytics-api/internal/config"
	"github.com/vfg2006/dashboard-analytics-api/internal/registry"
	"github.com/vfg2006/dashboard-analytics-api/internal/scheduler"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/dashboard-analytics-api/internal/usecases/normalizing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Registro imutável de domínios, construído uma única vez
	domainRegistry := registry.New()

	spreadsheetDecoder := decoder.NewSpreadsheetDecoder()
	normalizer := normalizing.NewService()

	orchestrator := dashboarding.NewService(domainRegistry, spreadsheetDecoder, normalizer)

	// Inicializa a limpeza periódica de sessões ociosas
	sessionJanitor := scheduler.NewSessionJanitorService(orchestrator, cfg)
	if err := sessionJanitor.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, domainRegistry, orchestrator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
