package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInsufficientShares = errors.New("insufficient share units")
)

// PoolPosition tracks one owner's claim on the shared liquidity pool.
// ShareUnits are whatever unit the pool adapter reports from a liquidity
// add; the ledger only relies on them being additive and proportionally
// divisible. CostBasis is the USDC principal forwarded into the pool for
// this position, net of redemptions; the difference between the position's
// live value and its cost basis is the accrued yield (or loss).
type PoolPosition struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	ShareUnits decimal.Decimal `gorm:"type:decimal(36,12);not null;default:0" json:"share_units"`
	CostBasis  decimal.Decimal `gorm:"type:decimal(24,6);not null;default:0" json:"cost_basis"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for PoolPosition
func (p *PoolPosition) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// BeforeUpdate hook for PoolPosition
func (p *PoolPosition) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return p.Validate()
}

// Validate validates the position fields
func (p *PoolPosition) Validate() error {
	if p.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if p.ShareUnits.LessThan(decimal.Zero) {
		return errors.New("share units cannot be negative")
	}

	if p.CostBasis.LessThan(decimal.Zero) {
		return errors.New("cost basis cannot be negative")
	}

	return nil
}

// AddShares credits newly issued share units and their USDC principal
func (p *PoolPosition) AddShares(units, principal decimal.Decimal) error {
	if units.LessThanOrEqual(decimal.Zero) {
		return errors.New("share units must be positive")
	}

	p.ShareUnits = p.ShareUnits.Add(units)
	p.CostBasis = p.CostBasis.Add(principal)
	return nil
}

// BurnShares removes redeemed share units and releases a proportional slice
// of the cost basis. Burning the full position clears the basis exactly so
// no principal dust is left behind.
func (p *PoolPosition) BurnShares(units decimal.Decimal) error {
	if units.LessThanOrEqual(decimal.Zero) {
		return errors.New("share units must be positive")
	}

	if units.GreaterThan(p.ShareUnits) {
		return ErrInsufficientShares
	}

	if units.Equal(p.ShareUnits) {
		p.ShareUnits = decimal.Zero
		p.CostBasis = decimal.Zero
		return nil
	}

	released := p.CostBasis.Mul(units).Div(p.ShareUnits).RoundDown(6)
	p.CostBasis = p.CostBasis.Sub(released)
	p.ShareUnits = p.ShareUnits.Sub(units)
	return nil
}

// HasShares reports whether the position still holds any pool claim
func (p *PoolPosition) HasShares() bool {
	return p.ShareUnits.GreaterThan(decimal.Zero)
}

// TableName returns the table name for PoolPosition
func (p *PoolPosition) TableName() string {
	return "pool_positions"
}
