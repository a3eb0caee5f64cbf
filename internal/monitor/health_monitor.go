package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/HungEzz/surfsui/infrastructure/database/postgres"
	"github.com/HungEzz/surfsui/infrastructure/repository"
	"github.com/HungEzz/surfsui/internal/config"
)

// HealthMonitorConfig holds the schedule for periodic health snapshots.
type HealthMonitorConfig struct {
	CronSchedule string
	Enabled      bool
	PingTimeout  time.Duration
}

// HealthMonitorService periodically pings the database and logs a
// freshness snapshot of the rankings table. It never mutates state.
type HealthMonitorService struct {
	scheduler     *gocron.Scheduler
	config        HealthMonitorConfig
	conn          postgres.Conn
	rankingRepo   repository.DAppRankingRepository
	checkRunning  bool
	checkMutex    sync.Mutex
	lastCheckedAt time.Time
}

func NewHealthMonitorService(
	conn postgres.Conn,
	rankingRepo repository.DAppRankingRepository,
	appConfig *config.Config,
) *HealthMonitorService {
	monitorConfig := HealthMonitorConfig{
		CronSchedule: appConfig.HealthMonitor.CronSchedule,
		Enabled:      appConfig.HealthMonitor.Enabled,
		PingTimeout:  appConfig.Database.PingTimeout,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
		"enabled":       monitorConfig.Enabled,
	}).Info("health monitor configuration loaded")

	return &HealthMonitorService{
		scheduler:   scheduler,
		config:      monitorConfig,
		conn:        conn,
		rankingRepo: rankingRepo,
	}
}

// Start schedules the periodic check. It is a no-op when the monitor is
// disabled by configuration.
func (s *HealthMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("health monitor disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting health monitor")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runCheck(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "scheduling health monitor")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping health monitor")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *HealthMonitorService) runCheck(ctx context.Context) {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("health check already in progress, skipping")
		return
	}
	s.checkRunning = true
	s.checkMutex.Unlock()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.lastCheckedAt = time.Now()
		s.checkMutex.Unlock()
	}()

	startTime := time.Now()

	pingCtx, cancel := context.WithTimeout(ctx, s.config.PingTimeout)
	defer cancel()

	if err := s.conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).Error("health monitor: database unreachable")
		return
	}

	poolStats := s.conn.Stats()
	fields := logrus.Fields{
		"duration_ms": time.Since(startTime).Milliseconds(),
		"pool_open":   poolStats.OpenConnections,
		"pool_in_use": poolStats.InUse,
		"pool_idle":   poolStats.Idle,
	}

	stats, err := s.rankingRepo.GetStats(ctx)
	if err != nil {
		logrus.WithError(err).WithFields(fields).Warn("health monitor: stats query failed")
		return
	}

	fields["total_dapps"] = stats.TotalDApps
	fields["last_updated"] = stats.LastUpdated
	logrus.WithFields(fields).Info("health monitor snapshot")
}
