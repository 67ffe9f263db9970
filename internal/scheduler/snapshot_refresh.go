// Package scheduler contém os jobs agendados do serviço
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/payout-insights-api/internal/config"
	"github.com/vfg2006/payout-insights-api/pkg/metrics"
)

const refreshTimeout = 2 * time.Minute

// SnapshotRefresher recarrega os dados financeiros em cache
type SnapshotRefresher interface {
	RefreshSnapshot(ctx context.Context) error
}

type SnapshotRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SnapshotRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           SnapshotRefresher
	metrics             *metrics.Collector
	config              SnapshotRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSnapshotRefreshService(
	refresher SnapshotRefresher,
	collector *metrics.Collector,
	cfg *config.Config,
) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: cfg.SnapshotSync.CronSchedule, // Default: a cada 10 minutos
		SyncEnabled:  cfg.SnapshotSync.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de snapshot carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		refresher: refresher,
		metrics:   collector,
		config:    refreshConfig,
	}
}

func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de atualização de snapshot desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização de snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro na atualização do snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização de snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSnapshot executa uma atualização; chamadas concorrentes são ignoradas
func (s *SnapshotRefreshService) RefreshSnapshot(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização de snapshot já está em execução")
		s.metrics.SnapshotRefresh(metrics.OutcomeSkipped)
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	logrus.Info("Iniciando atualização de snapshot")
	err := s.refresher.RefreshSnapshot(refreshCtx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		s.metrics.SnapshotRefresh(metrics.OutcomeError)
		return err
	}

	s.metrics.SnapshotRefresh(metrics.OutcomeOK)
	logrus.Info("Snapshot atualizado")
	return nil
}

// TriggerManualSync inicia manualmente uma atualização de snapshot.
// Retorna false se já houver uma em andamento.
func (s *SnapshotRefreshService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Atualização de snapshot já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual de snapshot")
	go func() {
		if err := s.RefreshSnapshot(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na atualização manual do snapshot")
		}
	}()

	return true
}

func (s *SnapshotRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
