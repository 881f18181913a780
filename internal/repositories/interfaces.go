package repositories

import (
	"stablestash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsAccountRepositoryInterface defines the contract for savings account storage
type SavingsAccountRepositoryInterface interface {
	Create(account *models.SavingsAccount) error
	GetByOwnerID(ownerID uuid.UUID) (*models.SavingsAccount, error)
	ExistsForOwner(ownerID uuid.UUID) (bool, error)
	Update(account *models.SavingsAccount) error
	List(offset, limit int) ([]models.SavingsAccount, int64, error)
	SumCurrentBalances() (decimal.Decimal, error)
}

// PoolPositionRepositoryInterface defines the contract for pool position storage
type PoolPositionRepositoryInterface interface {
	GetByOwnerID(ownerID uuid.UUID) (*models.PoolPosition, error)
	GetOrCreate(ownerID uuid.UUID) (*models.PoolPosition, error)
	Update(position *models.PoolPosition) error
	TotalShareUnits() (decimal.Decimal, error)
	SumCostBasis() (decimal.Decimal, error)
}

// LedgerEntryRepositoryInterface defines the contract for the balance journal
type LedgerEntryRepositoryInterface interface {
	Create(entry *models.LedgerEntry) error
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error)
	GetRecentByOwnerID(ownerID uuid.UUID, limit int) ([]models.LedgerEntry, error)
	GetByReference(reference string) (*models.LedgerEntry, error)
}

// ForwardingTaskRepositoryInterface defines the contract for the pool-forwarding retry queue
type ForwardingTaskRepositoryInterface interface {
	Enqueue(ownerID uuid.UUID, amount decimal.Decimal, maxRetries int) (*models.ForwardingTask, error)
	FetchDue(limit int) ([]*models.ForwardingTask, error)
	MarkProcessing(taskID uuid.UUID) error
	MarkCompleted(taskID uuid.UUID) error
	MarkFailed(taskID uuid.UUID, errorMessage string) error
	Reschedule(task *models.ForwardingTask, errorMessage string) error
	GetPendingCount() (int64, error)
	GetProcessingCount() (int64, error)
	GetCompletedCount() (int64, error)
	GetFailedCount() (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log storage
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByOwnerID(ownerID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
}
