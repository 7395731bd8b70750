package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/nexscore-api/infrastructure/repository"
	"github.com/vfg2006/nexscore-api/internal/config"
	"github.com/vfg2006/nexscore-api/internal/domain"
)

const hoursPerDay = 24

// FreshnessCheckConfig representa a configuração da verificação de atualização dos dados
type FreshnessCheckConfig struct {
	CronSchedule string
	MaxAgeDays   int
	Enabled      bool
}

// FreshnessReport é o resultado de uma verificação
type FreshnessReport struct {
	CheckedAt        time.Time    `json:"checked_at"`
	LatestUpdateDate *domain.Date `json:"latest_update_date"`
	RecordCount      int64        `json:"record_count"`
	AgeDays          int          `json:"age_days"`
	Stale            bool         `json:"stale"`
}

// FreshnessCheckService verifica periodicamente se a tabela nex_score continua
// recebendo cargas. A API é somente leitura, então o job apenas registra alertas.
type FreshnessCheckService struct {
	scheduler    *gocron.Scheduler
	config       FreshnessCheckConfig
	repo         repository.NexScoreRepository
	now          func() time.Time
	checkRunning bool
	checkMutex   sync.Mutex
	lastReport   *FreshnessReport
	lastError    error
}

// NewFreshnessCheckService cria uma nova instância do serviço de verificação
func NewFreshnessCheckService(repo repository.NexScoreRepository, appConfig *config.Config) *FreshnessCheckService {
	checkConfig := FreshnessCheckConfig{
		CronSchedule: appConfig.FreshnessCheck.CronSchedule,
		MaxAgeDays:   appConfig.FreshnessCheck.MaxAgeDays,
		Enabled:      appConfig.FreshnessCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"max_age_days":  checkConfig.MaxAgeDays,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração da verificação de atualização carregada")

	return &FreshnessCheckService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    checkConfig,
		repo:      repo,
		now:       time.Now,
	}
}

// Start agenda a verificação e bloqueia até o contexto ser cancelado
func (s *FreshnessCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação de atualização desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da verificação de atualização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.CheckNow(ctx); err != nil {
			logrus.WithError(err).Error("Erro na verificação agendada de atualização")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de atualização: %w", err)
	}

	s.scheduler.StartAsync()

	<-ctx.Done()
	logrus.Info("Parando agendador da verificação de atualização")
	s.scheduler.Stop()

	return nil
}

// CheckNow executa a verificação de forma síncrona e guarda o resultado
func (s *FreshnessCheckService) CheckNow(ctx context.Context) (*FreshnessReport, error) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		return nil, fmt.Errorf("verificação de atualização já em andamento")
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	report, err := s.checkFreshness(ctx)

	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()
	s.checkRunning = false
	s.lastError = err
	if err != nil {
		return nil, err
	}
	s.lastReport = report

	return report, nil
}

func (s *FreshnessCheckService) checkFreshness(ctx context.Context) (*FreshnessReport, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar registros: %w", err)
	}

	latest, err := s.repo.MaxUpdateDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar data mais recente: %w", err)
	}

	now := s.now()
	report := &FreshnessReport{
		CheckedAt:        now,
		LatestUpdateDate: latest,
		RecordCount:      count,
		Stale:            true,
	}

	if latest == nil {
		logrus.Warn("Tabela nex_score vazia: nenhuma carga encontrada")
		return report, nil
	}

	report.AgeDays = int(domain.DateOf(now).Sub(latest.Time).Hours() / hoursPerDay)
	report.Stale = report.AgeDays > s.config.MaxAgeDays

	fields := logrus.Fields{
		"latest_update_date": latest.String(),
		"age_days":           report.AgeDays,
		"max_age_days":       s.config.MaxAgeDays,
		"records":            count,
	}
	if report.Stale {
		logrus.WithFields(fields).Warn("Dados de NexScore desatualizados")
	} else {
		logrus.WithFields(fields).Info("Dados de NexScore em dia")
	}

	return report, nil
}

// GetStatus retorna o status atual da verificação
func (s *FreshnessCheckService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	status := map[string]any{
		"check_running": s.checkRunning,
		"check_cron":    s.config.CronSchedule,
		"check_enabled": s.config.Enabled,
		"max_age_days":  s.config.MaxAgeDays,
		"last_report":   s.lastReport,
	}
	if s.lastError != nil {
		status["last_error"] = s.lastError.Error()
	}

	return status
}
