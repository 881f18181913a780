package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"stablestash/internal/database"
	"stablestash/internal/models"
	"stablestash/internal/repositories"
	"stablestash/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type forwardingFixture struct {
	service  ForwardingServiceInterface
	taskRepo repositories.ForwardingTaskRepositoryInterface
	db       *database.DB
	yield    *service_mocks.MockYieldServiceInterface
	breaker  *service_mocks.MockCircuitBreakerInterface
}

func newForwardingFixture(t *testing.T, ctrl *gomock.Controller) *forwardingFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	taskRepo := repositories.NewForwardingTaskRepository(db.DB)

	yield := service_mocks.NewMockYieldServiceInterface(ctrl)
	breaker := service_mocks.NewMockCircuitBreakerInterface(ctrl)
	metrics := service_mocks.NewMockMetricsRecorderInterface(ctrl)
	metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	service := NewForwardingService(
		taskRepo,
		yield,
		NewAuditLogger(discardLogger()),
		metrics,
		breaker,
		2,
		5,
	)

	return &forwardingFixture{
		service:  service,
		taskRepo: taskRepo,
		db:       db,
		yield:    yield,
		breaker:  breaker,
	}
}

func (f *forwardingFixture) reloadTask(t *testing.T, taskID uuid.UUID) *models.ForwardingTask {
	t.Helper()

	var task models.ForwardingTask
	require.NoError(t, f.db.First(&task, "id = ?", taskID).Error)
	return &task
}

func TestForwardingService_Enqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)
	ownerID := uuid.New()
	amount := decimal.NewFromInt(42)

	task, err := f.service.Enqueue(ownerID, amount)

	require.NoError(t, err)
	assert.Equal(t, models.ForwardingStatusPending, task.Status)
	assert.Equal(t, ownerID, task.OwnerID)
	assert.True(t, task.Amount.Equal(amount))
	assert.Equal(t, 5, task.MaxRetries)
	assert.Zero(t, task.RetryCount)

	pending, err := f.taskRepo.GetPendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestForwardingService_ProcessTask_Completes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)
	ownerID := uuid.New()
	amount := decimal.NewFromInt(42)

	task, err := f.service.Enqueue(ownerID, amount)
	require.NoError(t, err)

	f.breaker.EXPECT().IsOpen().Return(false)
	f.yield.EXPECT().
		Deposit(gomock.Any(), ownerID, decimalEq(amount)).
		Return(decimal.NewFromInt(42), nil)

	err = f.service.ProcessTask(context.Background(), task)

	require.NoError(t, err)
	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, models.ForwardingStatusCompleted, stored.Status)
	assert.NotNil(t, stored.ProcessedAt)
}

func TestForwardingService_ProcessTask_ReschedulesOnPoolFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)
	ownerID := uuid.New()

	task, err := f.service.Enqueue(ownerID, decimal.NewFromInt(42))
	require.NoError(t, err)
	scheduledBefore := task.ScheduledAt

	poolErr := errors.New("pool unavailable")
	f.breaker.EXPECT().IsOpen().Return(false)
	f.yield.EXPECT().
		Deposit(gomock.Any(), ownerID, gomock.Any()).
		Return(decimal.Zero, poolErr)

	err = f.service.ProcessTask(context.Background(), task)

	assert.ErrorIs(t, err, poolErr)

	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, models.ForwardingStatusPending, stored.Status)
	assert.Equal(t, 1, stored.RetryCount)
	assert.Equal(t, "pool unavailable", stored.LastError)
	assert.True(t, stored.ScheduledAt.After(scheduledBefore))
}

func TestForwardingService_ProcessTask_CircuitOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)

	task, err := f.service.Enqueue(uuid.New(), decimal.NewFromInt(42))
	require.NoError(t, err)

	f.breaker.EXPECT().IsOpen().Return(true)

	err = f.service.ProcessTask(context.Background(), task)

	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	// The task is untouched and will be picked up on a later pass.
	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, models.ForwardingStatusPending, stored.Status)
	assert.Zero(t, stored.RetryCount)
}

func TestForwardingService_ProcessTask_MaxRetriesExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)

	task, err := f.service.Enqueue(uuid.New(), decimal.NewFromInt(42))
	require.NoError(t, err)
	task.RetryCount = task.MaxRetries

	f.breaker.EXPECT().IsOpen().Return(false)

	err = f.service.ProcessTask(context.Background(), task)

	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, models.ForwardingStatusFailed, stored.Status)
	assert.Equal(t, ErrMaxRetriesExceeded.Error(), stored.LastError)
}

func TestForwardingService_ProcessTask_AlreadyClaimed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)

	task, err := f.service.Enqueue(uuid.New(), decimal.NewFromInt(42))
	require.NoError(t, err)

	// Another worker claims the task first. The second attempt is a no-op and
	// never reaches the pool.
	require.NoError(t, f.taskRepo.MarkProcessing(task.ID))

	f.breaker.EXPECT().IsOpen().Return(false)

	err = f.service.ProcessTask(context.Background(), task)

	assert.NoError(t, err)
	stored := f.reloadTask(t, task.ID)
	assert.Equal(t, models.ForwardingStatusProcessing, stored.Status)
}

func TestForwardingService_Sweep_DrainsDueTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)
	ownerA := uuid.New()
	ownerB := uuid.New()

	_, err := f.service.Enqueue(ownerA, decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = f.service.Enqueue(ownerB, decimal.NewFromInt(20))
	require.NoError(t, err)

	// FetchDue compares scheduled_at against the current clock.
	time.Sleep(10 * time.Millisecond)

	f.breaker.EXPECT().IsOpen().Return(false).Times(2)
	f.yield.EXPECT().
		Deposit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(decimal.NewFromInt(1), nil).
		Times(2)

	f.service.Sweep(context.Background())

	completed, err := f.taskRepo.GetCompletedCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), completed)
}

func TestForwardingService_GetQueueDepths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newForwardingFixture(t, ctrl)

	taskA, err := f.service.Enqueue(uuid.New(), decimal.NewFromInt(10))
	require.NoError(t, err)
	_, err = f.service.Enqueue(uuid.New(), decimal.NewFromInt(20))
	require.NoError(t, err)
	require.NoError(t, f.taskRepo.MarkProcessing(taskA.ID))

	pending, processing, completed, failed, err := f.service.GetQueueDepths()

	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
	assert.Equal(t, int64(1), processing)
	assert.Zero(t, completed)
	assert.Zero(t, failed)
}
