package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
)

const jobTimeout = 2 * time.Minute

// Scheduler runs the nightly stock carry-over.
type Scheduler struct {
	cron      *cron.Cron
	inventory portssvc.InventoryWriterSvc
	schedule  string
	clock     domain.Clock
	logger    *slog.Logger
}

// NewScheduler creates a scheduler. schedule is a standard five-field cron
// expression evaluated in local time.
func NewScheduler(inventory portssvc.InventoryWriterSvc, schedule string, clock domain.Clock, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = time.Now
	}

	return &Scheduler{
		cron:      cron.New(),
		inventory: inventory,
		schedule:  schedule,
		clock:     clock,
		logger:    logger.With(slog.String("component", "scheduler")),
	}
}

// Start registers the carry-over job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler", slog.String("carry_over_schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.carryOverJob); err != nil {
		s.logger.Error("Failed to schedule carry-over", slog.String("error", err.Error()))
		return err
	}

	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) carryOverJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.RunCarryOver(ctx); err != nil {
		s.logger.Error("Carry-over failed", slog.String("error", err.Error()))
	}
}

// RunCarryOver moves yesterday's leftover stock into today.
func (s *Scheduler) RunCarryOver(ctx context.Context) ([]domain.InventoryRecord, error) {
	today := domain.FormatDate(s.clock())
	yesterday, err := domain.PreviousDate(today)
	if err != nil {
		return nil, err
	}

	carried, err := s.inventory.CarryOver(ctx, yesterday, today)
	if err != nil {
		return carried, err
	}
	s.logger.Info("Carry-over completed",
		slog.String("from", yesterday),
		slog.String("to", today),
		slog.Int("records", len(carried)))
	return carried, nil
}
