package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TrustModeManual = "manual"
	TrustModeAuto   = "auto"

	AccountStatusActive   = "active"
	AccountStatusInactive = "inactive"
)

var (
	ErrInvalidTrustMode     = errors.New("invalid trust mode")
	ErrInvalidAccountStatus = errors.New("invalid account status")
	ErrInvalidGoal          = errors.New("weekly goal must be positive")
	ErrNegativeBalance      = errors.New("balance cannot be negative")
	ErrBalanceMismatch      = errors.New("current balance must equal total deposited minus total withdrawn")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrInsufficientFunds    = errors.New("insufficient funds")
)

// SavingsAccount is the ledger record for one owner's custodial savings.
// All amounts are USDC with 6 decimal places.
type SavingsAccount struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	TotalDeposited decimal.Decimal `gorm:"type:decimal(24,6);not null;default:0" json:"total_deposited"`
	TotalWithdrawn decimal.Decimal `gorm:"type:decimal(24,6);not null;default:0" json:"total_withdrawn"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(24,6);not null;default:0" json:"current_balance"`
	WeeklyGoal     decimal.Decimal `gorm:"type:decimal(24,6);not null" json:"weekly_goal"`
	SafetyBuffer   decimal.Decimal `gorm:"type:decimal(24,6);not null;default:0" json:"safety_buffer"`
	// LastSaveAt is epoch seconds of the last automated save. Zero means the
	// account has never auto-saved, which exempts the first save from the
	// rate-limit window.
	LastSaveAt int64           `gorm:"not null;default:0" json:"last_save_at"`
	TrustMode  string          `gorm:"type:varchar(10);not null;default:'manual'" json:"trust_mode"`
	Status     string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`

	LedgerEntries []LedgerEntry `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for SavingsAccount
func (a *SavingsAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Status == "" {
		a.Status = AccountStatusActive
	}

	if a.TrustMode == "" {
		a.TrustMode = TrustModeManual
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for SavingsAccount
func (a *SavingsAccount) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate checks the account fields and the conservation invariant.
func (a *SavingsAccount) Validate() error {
	if a.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !IsValidTrustMode(a.TrustMode) {
		return ErrInvalidTrustMode
	}

	if !IsValidAccountStatus(a.Status) {
		return ErrInvalidAccountStatus
	}

	if a.WeeklyGoal.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidGoal
	}

	if a.SafetyBuffer.LessThan(decimal.Zero) {
		return errors.New("safety buffer cannot be negative")
	}

	if a.CurrentBalance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}

	// Conservation: currentBalance == totalDeposited - totalWithdrawn, always.
	if !a.CurrentBalance.Equal(a.TotalDeposited.Sub(a.TotalWithdrawn)) {
		return ErrBalanceMismatch
	}

	return nil
}

// IsActive returns true if the account accepts ledger operations
func (a *SavingsAccount) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Credit records a deposit into the ledger
func (a *SavingsAccount) Credit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("credit amount must be positive")
	}

	a.TotalDeposited = a.TotalDeposited.Add(amount)
	a.CurrentBalance = a.CurrentBalance.Add(amount)
	return nil
}

// Debit records a withdrawal from the ledger
func (a *SavingsAccount) Debit(amount decimal.Decimal) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("debit amount must be positive")
	}

	if a.CurrentBalance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.TotalWithdrawn = a.TotalWithdrawn.Add(amount)
	a.CurrentBalance = a.CurrentBalance.Sub(amount)
	return nil
}

// CanAutoSaveAt reports whether an automated save is allowed at the given
// time. The first save of an account is always allowed.
func (a *SavingsAccount) CanAutoSaveAt(now time.Time, minInterval time.Duration) bool {
	if !a.IsActive() {
		return false
	}

	if a.LastSaveAt == 0 {
		return true
	}

	return now.Unix() >= a.LastSaveAt+int64(minInterval.Seconds())
}

// MarkSaved stamps the rate-limit window after a successful automated save
func (a *SavingsAccount) MarkSaved(now time.Time) {
	a.LastSaveAt = now.Unix()
}

// TableName returns the table name for SavingsAccount
func (a *SavingsAccount) TableName() string {
	return "savings_accounts"
}

// IsValidTrustMode checks if the trust mode is valid
func IsValidTrustMode(mode string) bool {
	switch mode {
	case TrustModeManual, TrustModeAuto:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusInactive:
		return true
	default:
		return false
	}
}
