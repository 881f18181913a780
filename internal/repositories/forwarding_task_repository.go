package repositories

import (
	"fmt"
	"time"

	"stablestash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// forwardingTaskRepository implements ForwardingTaskRepositoryInterface
type forwardingTaskRepository struct {
	db *gorm.DB
}

// NewForwardingTaskRepository creates a new forwarding task repository
func NewForwardingTaskRepository(db *gorm.DB) ForwardingTaskRepositoryInterface {
	return &forwardingTaskRepository{db: db}
}

// Enqueue records a credited amount whose pool forwarding failed so the
// drain worker can retry it later
func (r *forwardingTaskRepository) Enqueue(ownerID uuid.UUID, amount decimal.Decimal, maxRetries int) (*models.ForwardingTask, error) {
	task := &models.ForwardingTask{
		OwnerID:     ownerID,
		Amount:      amount,
		Status:      models.ForwardingStatusPending,
		MaxRetries:  maxRetries,
		ScheduledAt: time.Now(),
	}
	if err := r.db.Create(task).Error; err != nil {
		return nil, fmt.Errorf("failed to enqueue forwarding task: %w", err)
	}
	return task, nil
}

// FetchDue retrieves pending tasks whose scheduled time has arrived,
// oldest schedule first
func (r *forwardingTaskRepository) FetchDue(limit int) ([]*models.ForwardingTask, error) {
	var tasks []*models.ForwardingTask
	if err := r.db.Where("status = ? AND scheduled_at <= ?", models.ForwardingStatusPending, time.Now()).
		Order("scheduled_at ASC").Limit(limit).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch due forwarding tasks: %w", err)
	}
	return tasks, nil
}

// MarkProcessing transitions a pending task to processing
func (r *forwardingTaskRepository) MarkProcessing(taskID uuid.UUID) error {
	result := r.db.Model(&models.ForwardingTask{}).
		Where("id = ? AND status = ?", taskID, models.ForwardingStatusPending).
		Update("status", models.ForwardingStatusProcessing)
	if result.Error != nil {
		return fmt.Errorf("failed to mark task processing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// MarkCompleted finalizes a successfully forwarded task
func (r *forwardingTaskRepository) MarkCompleted(taskID uuid.UUID) error {
	now := time.Now()
	result := r.db.Model(&models.ForwardingTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"status":       models.ForwardingStatusCompleted,
			"processed_at": &now,
			"last_error":   "",
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark task completed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// MarkFailed finalizes a task that exhausted its retries
func (r *forwardingTaskRepository) MarkFailed(taskID uuid.UUID, errorMessage string) error {
	now := time.Now()
	result := r.db.Model(&models.ForwardingTask{}).
		Where("id = ?", taskID).
		Updates(map[string]interface{}{
			"status":       models.ForwardingStatusFailed,
			"processed_at": &now,
			"last_error":   errorMessage,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark task failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Reschedule returns a task to pending with an exponentially backed-off
// scheduled time
func (r *forwardingTaskRepository) Reschedule(task *models.ForwardingTask, errorMessage string) error {
	if !task.CanRetry() {
		return r.MarkFailed(task.ID, errorMessage)
	}

	task.RetryCount++
	task.Status = models.ForwardingStatusPending
	task.ScheduledAt = task.CalculateNextScheduledTime()
	task.LastError = errorMessage

	if err := r.db.Save(task).Error; err != nil {
		return fmt.Errorf("failed to reschedule forwarding task: %w", err)
	}
	return nil
}

// GetPendingCount returns the number of pending tasks
func (r *forwardingTaskRepository) GetPendingCount() (int64, error) {
	return r.countByStatus(models.ForwardingStatusPending)
}

// GetProcessingCount returns the number of in-flight tasks
func (r *forwardingTaskRepository) GetProcessingCount() (int64, error) {
	return r.countByStatus(models.ForwardingStatusProcessing)
}

// GetCompletedCount returns the number of completed tasks
func (r *forwardingTaskRepository) GetCompletedCount() (int64, error) {
	return r.countByStatus(models.ForwardingStatusCompleted)
}

// GetFailedCount returns the number of permanently failed tasks
func (r *forwardingTaskRepository) GetFailedCount() (int64, error) {
	return r.countByStatus(models.ForwardingStatusFailed)
}

func (r *forwardingTaskRepository) countByStatus(status string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.ForwardingTask{}).
		Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count forwarding tasks: %w", err)
	}
	return count, nil
}
