package models

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryKindDeposit         = "deposit"
	EntryKindCreditedDeposit = "credited_deposit"
	EntryKindAutoSave        = "auto_save"
	EntryKindWithdrawal      = "withdrawal"
)

var (
	ErrInvalidEntryKind = errors.New("invalid ledger entry kind")
	ErrInvalidAmount    = errors.New("entry amount must be positive")
)

// LedgerEntry is one journal row per balance mutation on a savings account
type LedgerEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Kind          string          `gorm:"type:varchar(20);not null" json:"kind"`
	Amount        decimal.Decimal `gorm:"type:decimal(24,6);not null" json:"amount"`
	BalanceBefore decimal.Decimal `gorm:"type:decimal(24,6);not null" json:"balance_before"`
	BalanceAfter  decimal.Decimal `gorm:"type:decimal(24,6);not null" json:"balance_after"`
	Reference     string          `gorm:"type:varchar(100);index" json:"reference,omitempty"`
	Metadata      JSONBMap        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt     time.Time       `gorm:"not null;index" json:"created_at"`

	Account SavingsAccount `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for LedgerEntry
func (e *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.Reference == "" {
		e.Reference = GenerateEntryReference()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	return e.Validate()
}

// Validate validates the entry fields
func (e *LedgerEntry) Validate() error {
	if e.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if e.OwnerID == uuid.Nil {
		return errors.New("owner ID is required")
	}

	if !IsValidEntryKind(e.Kind) {
		return ErrInvalidEntryKind
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return e.ensureBalanceIsCorrect()
}

func (e *LedgerEntry) ensureBalanceIsCorrect() error {
	var expected decimal.Decimal
	if e.IsCredit() {
		expected = e.BalanceBefore.Add(e.Amount)
	} else {
		expected = e.BalanceBefore.Sub(e.Amount)
	}

	if !e.BalanceAfter.Equal(expected) {
		return fmt.Errorf("balance after %s does not match balance before %s and amount %s",
			e.BalanceAfter, e.BalanceBefore, e.Amount)
	}

	return nil
}

// IsCredit reports whether the entry increases the ledger balance
func (e *LedgerEntry) IsCredit() bool {
	return e.Kind != EntryKindWithdrawal
}

// TableName returns the table name for LedgerEntry
func (e *LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsValidEntryKind checks if the entry kind is valid
func IsValidEntryKind(kind string) bool {
	switch kind {
	case EntryKindDeposit, EntryKindCreditedDeposit, EntryKindAutoSave, EntryKindWithdrawal:
		return true
	default:
		return false
	}
}

// GenerateEntryReference generates a journal reference for a ledger entry
func GenerateEntryReference() string {
	return fmt.Sprintf("SAV-%d-%06d", time.Now().UnixNano()/int64(time.Millisecond), rand.Intn(1000000))
}
