package repositories

import (
	"errors"
	"fmt"

	"stablestash/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ledgerEntryRepository implements LedgerEntryRepositoryInterface
type ledgerEntryRepository struct {
	db *gorm.DB
}

// NewLedgerEntryRepository creates a new ledger entry repository
func NewLedgerEntryRepository(db *gorm.DB) LedgerEntryRepositoryInterface {
	return &ledgerEntryRepository{db: db}
}

// Create appends a journal row
func (r *ledgerEntryRepository) Create(entry *models.LedgerEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	return nil
}

// GetByAccountID retrieves journal rows for an account with pagination
func (r *ledgerEntryRepository) GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.LedgerEntry, int64, error) {
	var entries []models.LedgerEntry
	var total int64

	query := r.db.Model(&models.LedgerEntry{}).Where("account_id = ?", accountID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	if err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	return entries, total, nil
}

// GetRecentByOwnerID retrieves the most recent journal rows for an owner
func (r *ledgerEntryRepository) GetRecentByOwnerID(ownerID uuid.UUID, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent ledger entries: %w", err)
	}
	return entries, nil
}

// GetByReference retrieves a journal row by its reference
func (r *ledgerEntryRepository) GetByReference(reference string) (*models.LedgerEntry, error) {
	var entry models.LedgerEntry
	if err := r.db.Where("reference = ?", reference).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get ledger entry by reference: %w", err)
	}
	return &entry, nil
}
