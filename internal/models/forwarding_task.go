package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ForwardingStatusPending    = "pending"
	ForwardingStatusProcessing = "processing"
	ForwardingStatusCompleted  = "completed"
	ForwardingStatusFailed     = "failed"

	ForwardingDefaultMaxRetries = 5
)

// CircuitBreakerState tracks the pool adapter circuit breaker position
type CircuitBreakerState int

// ForwardingTask is a queued pool-forwarding work item. A deposit whose
// pool routing failed stays credited on the ledger; the amount is parked
// here and re-driven into the pool by the forwarding worker.
type ForwardingTask struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_forwarding_owner" json:"owner_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(24,6);not null" json:"amount"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';index:idx_forwarding_status,priority:1" json:"status"`
	RetryCount  int             `gorm:"not null;default:0" json:"retry_count"`
	MaxRetries  int             `gorm:"not null;default:5" json:"max_retries"`
	ScheduledAt time.Time       `gorm:"not null;index:idx_forwarding_status,priority:2" json:"scheduled_at"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
	LastError   string          `gorm:"type:text" json:"last_error,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for ForwardingTask
func (*ForwardingTask) TableName() string {
	return "pool_forwarding_queue"
}

// BeforeCreate hook for ForwardingTask
func (t *ForwardingTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = ForwardingStatusPending
	}
	if t.MaxRetries == 0 {
		t.MaxRetries = ForwardingDefaultMaxRetries
	}
	if t.ScheduledAt.IsZero() {
		t.ScheduledAt = time.Now()
	}
	return nil
}

// CalculateNextScheduledTime returns the next attempt time with exponential backoff
func (t *ForwardingTask) CalculateNextScheduledTime() time.Time {
	backoffSeconds := 1 << uint(t.RetryCount)
	return time.Now().Add(time.Duration(backoffSeconds) * time.Second)
}

// CanRetry reports whether the task has retry budget left
func (t *ForwardingTask) CanRetry() bool {
	return t.RetryCount < t.MaxRetries
}
