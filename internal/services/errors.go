package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotActive      = errors.New("savings account is not active")
	ErrAccountAlreadyExists  = errors.New("savings account already exists for owner")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrInvalidGoal           = errors.New("weekly goal must be positive")
	ErrInsufficientBalance   = errors.New("insufficient ledger balance")
	ErrInsufficientLiquidity = errors.New("insufficient pool liquidity")
	ErrAmountExceedsLimit    = errors.New("amount exceeds the per-save limit")
	ErrSaveIntervalNotMet    = errors.New("minimum save interval has not elapsed")
	ErrUnauthorizedCaller    = errors.New("caller is not authorized for this operation")
	ErrZeroAmount            = errors.New("amount must be non-zero")
	ErrSlippageExceeded      = errors.New("pool output below slippage tolerance")
	ErrInvalidAdminKey       = errors.New("invalid admin key")
	ErrCustodyTransfer       = errors.New("custody transfer failed")
	ErrInvalidSettlement     = errors.New("settlement proof is invalid")
)

// PoolForwardingError reports that a deposit was credited on the ledger but
// could not be routed into the pool. The credit stands; the amount is queued
// for a retried forward. Callers detect it with errors.As.
type PoolForwardingError struct {
	OwnerID uuid.UUID
	Amount  decimal.Decimal
	TaskID  uuid.UUID
	Cause   error
}

func (e *PoolForwardingError) Error() string {
	return fmt.Sprintf("pool forwarding failed for owner %s amount %s, queued for retry: %v",
		e.OwnerID, e.Amount, e.Cause)
}

func (e *PoolForwardingError) Unwrap() error {
	return e.Cause
}
