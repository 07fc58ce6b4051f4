// Package scheduler запускает периодические задачи сервиса по cron-расписанию.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-VenueService/internal/service/bookings/models"
	"github.com/m04kA/SMC-VenueService/pkg/types"
)

type BookingCompleter interface {
	CompletePassed(ctx context.Context, today types.Date, dryRun bool) (*models.CompletionReport, error)
}

type Clock interface {
	Today() types.Date
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultJobTimeout ограничение на один прогон задачи
const DefaultJobTimeout = 5 * time.Minute

// Scheduler периодически переводит прошедшие подтверждённые бронирования в completed
type Scheduler struct {
	cron      *cron.Cron
	completer BookingCompleter
	clock     Clock
	logger    Logger
	timeout   time.Duration
}

// New создает планировщик. spec стандартное cron-выражение из пяти полей.
func New(spec string, loc *time.Location, completer BookingCompleter, clock Clock, logger Logger) (*Scheduler, error) {
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		completer: completer,
		clock:     clock,
		logger:    logger,
		timeout:   DefaultJobTimeout,
	}

	if _, err := s.cron.AddFunc(spec, func() { _ = s.RunCompletion(context.Background()) }); err != nil {
		return nil, fmt.Errorf("scheduler: invalid completion spec %q: %w", spec, err)
	}
	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.logger.Info("Scheduler: completion sweep next run at %s", e.Next.Format(time.RFC3339))
	}
}

// Stop останавливает планировщик и ждёт завершения текущего прогона не дольше ctx
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("Scheduler: stop timed out, running job abandoned")
	}
}

// RunCompletion один прогон завершения бронирований на текущую дату
func (s *Scheduler) RunCompletion(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	today := s.clock.Today()
	report, err := s.completer.CompletePassed(ctx, today, false)
	if err != nil {
		s.logger.Error("Scheduler: completion sweep failed for %s: %v", today, err)
		return err
	}

	s.logger.Info("Scheduler: completion sweep for %s completed %d booking(s)", today, report.Count())
	return nil
}
