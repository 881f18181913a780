package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"stablestash/internal/models"
	"stablestash/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// ForwardingService drains the pool-forwarding queue: ledger credits whose
// pool routing failed are parked as tasks and re-driven here until the pool
// accepts them or the retry budget runs out.
type ForwardingService struct {
	taskRepo        repositories.ForwardingTaskRepositoryInterface
	yieldService    YieldServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	maxWorkers      int
	maxRetries      int
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewForwardingService(
	taskRepo repositories.ForwardingTaskRepositoryInterface,
	yieldService YieldServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
	maxWorkers int,
	maxRetries int,
) ForwardingServiceInterface {
	return &ForwardingService{
		taskRepo:        taskRepo,
		yieldService:    yieldService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		maxWorkers:      maxWorkers,
		maxRetries:      maxRetries,
		workerSemaphore: make(chan struct{}, maxWorkers),
		logger:          slog.Default(),
	}
}

// Enqueue parks a credited amount for a retried pool forward
func (s *ForwardingService) Enqueue(ownerID uuid.UUID, amount decimal.Decimal) (*models.ForwardingTask, error) {
	task, err := s.taskRepo.Enqueue(ownerID, amount, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue forwarding task: %w", err)
	}

	s.metrics.IncrementCounter("forwarding.enqueued", nil)
	s.auditLogger.LogForwardingTaskQueued(context.Background(), task.ID, ownerID, amount.String())

	return task, nil
}

// StartProcessing runs the drain loop until the context is cancelled
func (s *ForwardingService) StartProcessing(ctx context.Context) {
	s.logger.Info("starting pool forwarding service",
		slog.Int("max_workers", s.maxWorkers),
	)

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("forwarding service shutting down, waiting for workers to complete")
			wg.Wait()
			s.logger.Info("forwarding service stopped")
			return

		case <-ticker.C:
			tasks, err := s.taskRepo.FetchDue(s.maxWorkers * 2)
			if err != nil {
				s.logger.Error("failed to fetch due forwarding tasks",
					slog.String("error", err.Error()),
				)
				continue
			}

			for _, task := range tasks {
				wg.Add(1)
				go s.processTaskAsync(ctx, task, &wg)
			}
		}
	}
}

// Sweep makes one drain pass, used by the cron schedule as a safety net
// alongside the ticker loop
func (s *ForwardingService) Sweep(ctx context.Context) {
	tasks, err := s.taskRepo.FetchDue(s.maxWorkers)
	if err != nil {
		s.logger.Error("forwarding sweep fetch failed",
			slog.String("error", err.Error()),
		)
		return
	}

	for _, task := range tasks {
		if err := s.ProcessTask(ctx, task); err != nil {
			s.logger.Warn("forwarding sweep task failed",
				slog.String("task_id", task.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.publishQueueDepths()
}

func (s *ForwardingService) processTaskAsync(ctx context.Context, task *models.ForwardingTask, wg *sync.WaitGroup) {
	defer wg.Done()

	s.workerSemaphore <- struct{}{}
	defer func() { <-s.workerSemaphore }()

	if err := s.ProcessTask(ctx, task); err != nil {
		s.logger.Error("failed to process forwarding task",
			slog.String("task_id", task.ID.String()),
			slog.String("owner_id", task.OwnerID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// ProcessTask attempts one pool forward for a queued task
func (s *ForwardingService) ProcessTask(ctx context.Context, task *models.ForwardingTask) error {
	if s.circuitBreaker.IsOpen() {
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": "exchange",
		})
		return ErrCircuitBreakerOpen
	}

	if !task.CanRetry() {
		return s.handleMaxRetriesExceeded(ctx, task)
	}

	if err := s.taskRepo.MarkProcessing(task.ID); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			// Another worker already claimed it.
			return nil
		}
		return err
	}

	if _, err := s.yieldService.Deposit(ctx, task.OwnerID, task.Amount); err != nil {
		return s.handleProcessingError(ctx, task, err)
	}

	if err := s.taskRepo.MarkCompleted(task.ID); err != nil {
		return err
	}

	s.auditLogger.LogForwardingTaskDrained(ctx, task.ID, task.OwnerID, task.Amount.String(), task.RetryCount)
	s.publishQueueDepths()

	return nil
}

// GetQueueDepths reports the queue state for metrics and health output
func (s *ForwardingService) GetQueueDepths() (int64, int64, int64, int64, error) {
	pending, err := s.taskRepo.GetPendingCount()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	processing, err := s.taskRepo.GetProcessingCount()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	completed, err := s.taskRepo.GetCompletedCount()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	failed, err := s.taskRepo.GetFailedCount()
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return pending, processing, completed, failed, nil
}

func (s *ForwardingService) handleProcessingError(ctx context.Context, task *models.ForwardingTask, err error) error {
	if task.CanRetry() {
		backoffMs := int64(math.Pow(2, float64(task.RetryCount)) * 1000)

		s.auditLogger.LogRetryAttempt(ctx, task.ID, task.OwnerID, task.RetryCount+1, task.MaxRetries, backoffMs)

		if retryErr := s.taskRepo.Reschedule(task, err.Error()); retryErr != nil {
			return fmt.Errorf("failed to reschedule task: %w", retryErr)
		}

		s.metrics.IncrementCounter("forwarding.retry", nil)

		return err
	}

	return s.handleMaxRetriesExceeded(ctx, task)
}

func (s *ForwardingService) handleMaxRetriesExceeded(ctx context.Context, task *models.ForwardingTask) error {
	if err := s.taskRepo.MarkFailed(task.ID, ErrMaxRetriesExceeded.Error()); err != nil {
		return err
	}

	s.auditLogger.LogForwardingTaskFailed(ctx, task.ID, task.OwnerID, ErrMaxRetriesExceeded.Error(), task.RetryCount)
	s.publishQueueDepths()

	return ErrMaxRetriesExceeded
}

func (s *ForwardingService) publishQueueDepths() {
	pending, processing, _, failed, err := s.GetQueueDepths()
	if err != nil {
		s.logger.Error("failed to read forwarding queue depths",
			slog.String("error", err.Error()),
		)
		return
	}

	s.metrics.RecordGauge("forwarding.queue_depth", float64(pending), map[string]string{"status": "pending"})
	s.metrics.RecordGauge("forwarding.queue_depth", float64(processing), map[string]string{"status": "processing"})
	s.metrics.RecordGauge("forwarding.queue_depth", float64(failed), map[string]string{"status": "failed"})
}
