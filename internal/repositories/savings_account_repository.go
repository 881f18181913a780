package repositories

import (
	"errors"
	"fmt"

	"stablestash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound  = errors.New("savings account not found")
	ErrAccountExists    = errors.New("savings account already exists for owner")
	ErrPositionNotFound = errors.New("pool position not found")
	ErrTaskNotFound     = errors.New("forwarding task not found")
	ErrEntryNotFound    = errors.New("ledger entry not found")
)

// savingsAccountRepository implements SavingsAccountRepositoryInterface
type savingsAccountRepository struct {
	db *gorm.DB
}

// NewSavingsAccountRepository creates a new savings account repository
func NewSavingsAccountRepository(db *gorm.DB) SavingsAccountRepositoryInterface {
	return &savingsAccountRepository{db: db}
}

// Create creates a new savings account
func (r *savingsAccountRepository) Create(account *models.SavingsAccount) error {
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to create savings account: %w", err)
	}
	return nil
}

// GetByOwnerID retrieves the savings account for an owner
func (r *savingsAccountRepository) GetByOwnerID(ownerID uuid.UUID) (*models.SavingsAccount, error) {
	var account models.SavingsAccount
	if err := r.db.Where("owner_id = ?", ownerID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get savings account: %w", err)
	}
	return &account, nil
}

// ExistsForOwner checks whether an account row exists for the owner
func (r *savingsAccountRepository) ExistsForOwner(ownerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&models.SavingsAccount{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

// Update persists account mutations
func (r *savingsAccountRepository) Update(account *models.SavingsAccount) error {
	if err := r.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update savings account: %w", err)
	}
	return nil
}

// List retrieves accounts with pagination
func (r *savingsAccountRepository) List(offset, limit int) ([]models.SavingsAccount, int64, error) {
	var accounts []models.SavingsAccount
	var total int64

	if err := r.db.Model(&models.SavingsAccount{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count savings accounts: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list savings accounts: %w", err)
	}

	return accounts, total, nil
}

// SumCurrentBalances returns the sum of all ledger balances, pooled or idle
func (r *savingsAccountRepository) SumCurrentBalances() (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.Model(&models.SavingsAccount{}).
		Select("COALESCE(SUM(current_balance), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum current balances: %w", err)
	}
	return total, nil
}
