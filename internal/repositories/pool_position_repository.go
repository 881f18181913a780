package repositories

import (
	"errors"
	"fmt"

	"stablestash/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// poolPositionRepository implements PoolPositionRepositoryInterface
type poolPositionRepository struct {
	db *gorm.DB
}

// NewPoolPositionRepository creates a new pool position repository
func NewPoolPositionRepository(db *gorm.DB) PoolPositionRepositoryInterface {
	return &poolPositionRepository{db: db}
}

// GetByOwnerID retrieves the pool position for an owner
func (r *poolPositionRepository) GetByOwnerID(ownerID uuid.UUID) (*models.PoolPosition, error) {
	var position models.PoolPosition
	if err := r.db.Where("owner_id = ?", ownerID).First(&position).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, fmt.Errorf("failed to get pool position: %w", err)
	}
	return &position, nil
}

// GetOrCreate retrieves the owner's position, creating an empty one if absent
func (r *poolPositionRepository) GetOrCreate(ownerID uuid.UUID) (*models.PoolPosition, error) {
	position, err := r.GetByOwnerID(ownerID)
	if err == nil {
		return position, nil
	}
	if !errors.Is(err, ErrPositionNotFound) {
		return nil, err
	}

	position = &models.PoolPosition{
		OwnerID:    ownerID,
		ShareUnits: decimal.Zero,
		CostBasis:  decimal.Zero,
	}
	if err := r.db.Create(position).Error; err != nil {
		return nil, fmt.Errorf("failed to create pool position: %w", err)
	}
	return position, nil
}

// Update persists position mutations
func (r *poolPositionRepository) Update(position *models.PoolPosition) error {
	if err := r.db.Save(position).Error; err != nil {
		return fmt.Errorf("failed to update pool position: %w", err)
	}
	return nil
}

// TotalShareUnits returns the process-wide sum of share units across owners.
// This sum is the sole denominator for proportional value computations.
func (r *poolPositionRepository) TotalShareUnits() (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.Model(&models.PoolPosition{}).
		Select("COALESCE(SUM(share_units), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum share units: %w", err)
	}
	return total, nil
}

// SumCostBasis returns the total USDC principal currently routed into the pool
func (r *poolPositionRepository) SumCostBasis() (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.Model(&models.PoolPosition{}).
		Select("COALESCE(SUM(cost_basis), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cost basis: %w", err)
	}
	return total, nil
}
