// Package scheduler runs periodic billing generation on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/application/billing"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/propledger/backend/internal/infrastructure/config"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const generationJobName = "billing_generate_global"

// GenerationRunner is the part of the billing service the job drives
type GenerationRunner interface {
	GenerateGlobal(ctx context.Context, req billing.GenerateGlobalRequest) (*billing.GenerationResponse, error)
}

// GenerationScheduler bills every active unit for the current period, once per
// configured concept, each time the cron spec fires.
type GenerationScheduler struct {
	spec       string
	conceptIDs []uuid.UUID
	timeout    time.Duration
	runner     GenerationRunner
	logger     *zap.Logger
	now        func() time.Time
	duration   *telemetry.Histogram

	cron    *cron.Cron
	mu      sync.Mutex
	running bool
	active  bool
	lastRun *JobRun
}

// NewGenerationScheduler validates cfg and builds a stopped scheduler
func NewGenerationScheduler(cfg config.SchedulerConfig, runner GenerationRunner, logger *zap.Logger) (*GenerationScheduler, error) {
	if runner == nil {
		return nil, fmt.Errorf("%w: generation runner is required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	conceptIDs := make([]uuid.UUID, 0, len(cfg.ConceptIDs))
	for _, raw := range cfg.ConceptIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: concept id %q: %v", ErrInvalidConfig, raw, err)
		}
		conceptIDs = append(conceptIDs, id)
	}
	if len(conceptIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one concept id is required", ErrInvalidConfig)
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(cfg.GenerationSpec); err != nil {
		return nil, fmt.Errorf("%w: generation spec %q: %v", ErrInvalidConfig, cfg.GenerationSpec, err)
	}

	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}

	logger = logger.Named("scheduler")
	s := &GenerationScheduler{
		spec:       cfg.GenerationSpec,
		conceptIDs: conceptIDs,
		timeout:    timeout,
		runner:     runner,
		logger:     logger,
		now:        time.Now,
	}
	cronLog := zapCronLogger{logger.Sugar()}
	s.cron = cron.New(
		cron.WithParser(parser),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	return s, nil
}

// SetClock overrides the time source used to pick the period
func (s *GenerationScheduler) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// SetMeter records the duration of every run, labelled by outcome
func (s *GenerationScheduler) SetMeter(meter metric.Meter) error {
	h, err := telemetry.NewHistogram(meter, telemetry.HistogramOpts{
		Name:        "ledger_generation_job_duration_seconds",
		Description: "Duration of scheduled billing generation runs",
		Unit:        "s",
		Boundaries:  telemetry.JobDurationBuckets,
	})
	if err != nil {
		return err
	}
	s.duration = h
	return nil
}

// Start registers the job and starts the cron loop
func (s *GenerationScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}

	if _, err := s.cron.AddFunc(s.spec, func() {
		if _, err := s.RunNow(ctx); err != nil {
			s.logger.Error("Scheduled generation failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("register generation job: %w", err)
	}
	s.cron.Start()
	s.running = true

	s.logger.Info("Generation scheduler started",
		zap.String("spec", s.spec),
		zap.Int("concepts", len(s.conceptIDs)),
		zap.Duration("job_timeout", s.timeout))
	return nil
}

// Stop halts the cron loop and waits for a running job to return or ctx to expire
func (s *GenerationScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Generation scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes the generation job once, outside the schedule. Concepts are
// processed independently so one failing concept does not block the rest.
func (s *GenerationScheduler) RunNow(ctx context.Context) (*JobRun, error) {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return nil, ErrJobInProgress
	}
	s.active = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.active = false
		s.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	run := &JobRun{
		ID:        uuid.New(),
		Period:    valueobject.PeriodOf(s.now()).String(),
		Status:    JobStatusRunning,
		StartedAt: s.now(),
	}

	telemetry.WithProfilingLabels(ctx, telemetry.JobLabels(generationJobName), func(ctx context.Context) {
		ctx, span := telemetry.StartSpan(ctx, "scheduler."+generationJobName,
			telemetry.WithAttribute("period", run.Period),
			telemetry.WithAttribute("run_id", run.ID.String()))
		defer span.End()

		for _, conceptID := range s.conceptIDs {
			run.Outcomes = append(run.Outcomes, s.generateConcept(ctx, run.Period, conceptID))
		}
		run.finish(s.now())

		created, skipped := run.Totals()
		telemetry.SetAttributes(span, "status", string(run.Status), "created", created, "skipped", skipped)
	})

	s.mu.Lock()
	s.lastRun = run
	s.mu.Unlock()

	if s.duration != nil {
		s.duration.RecordDuration(ctx, run.CompletedAt.Sub(run.StartedAt),
			telemetry.AttrOutcome.String(string(run.Status)))
	}

	created, skipped := run.Totals()
	s.logger.Info("Generation job finished",
		zap.String("run_id", run.ID.String()),
		zap.String("period", run.Period),
		zap.String("status", string(run.Status)),
		zap.Int("created", created),
		zap.Int("skipped", skipped),
		zap.Duration("duration", run.CompletedAt.Sub(run.StartedAt)))

	if run.Status == JobStatusFailed {
		return run, fmt.Errorf("generation failed for all %d concepts", len(run.Outcomes))
	}
	return run, nil
}

func (s *GenerationScheduler) generateConcept(ctx context.Context, period string, conceptID uuid.UUID) ConceptOutcome {
	outcome := ConceptOutcome{ConceptID: conceptID}
	resp, err := s.runner.GenerateGlobal(ctx, billing.GenerateGlobalRequest{
		Period:    period,
		ConceptID: conceptID,
	})
	if err != nil {
		outcome.Error = err.Error()
		s.logger.Warn("Generation failed for concept",
			zap.String("period", period),
			zap.String("concept_id", conceptID.String()),
			zap.Error(err))
		return outcome
	}
	outcome.Created = resp.Created
	outcome.Skipped = resp.Skipped
	return outcome
}

// LastRun returns a copy of the most recent run, or nil before the first one
func (s *GenerationScheduler) LastRun() *JobRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRun == nil {
		return nil
	}
	cp := *s.lastRun
	cp.Outcomes = append([]ConceptOutcome(nil), s.lastRun.Outcomes...)
	return &cp
}

// NextRun reports when the job fires next. Zero when stopped.
func (s *GenerationScheduler) NextRun() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

type zapCronLogger struct {
	l *zap.SugaredLogger
}

func (z zapCronLogger) Info(msg string, keysAndValues ...any) {
	z.l.Debugw(msg, keysAndValues...)
}

func (z zapCronLogger) Error(err error, msg string, keysAndValues ...any) {
	z.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
