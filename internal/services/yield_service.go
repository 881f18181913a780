package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"stablestash/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const shareUnitPrecision = 12

// YieldService keeps the pool-share ledger: who owns which fraction of the
// custodial pool position. Amounts flow through the pool adapter; this layer
// only does the proportional accounting. It is consumed by the savings ledger
// and the forwarding drain worker, and never exposed over a transport.
// Position mutations for one owner serialize on a per-owner mutex so the
// drain worker cannot race a concurrent deposit or withdrawal.
type YieldService struct {
	positionRepo repositories.PoolPositionRepositoryInterface
	poolAdapter  PoolAdapterInterface
	auditLogger  AuditLoggerInterface
	logger       *slog.Logger
	ownerLocks   *ownerMutexMap
}

func NewYieldService(
	positionRepo repositories.PoolPositionRepositoryInterface,
	poolAdapter PoolAdapterInterface,
	auditLogger AuditLoggerInterface,
	logger *slog.Logger,
) YieldServiceInterface {
	return &YieldService{
		positionRepo: positionRepo,
		poolAdapter:  poolAdapter,
		auditLogger:  auditLogger,
		logger:       logger,
		ownerLocks:   newOwnerMutexMap(),
	}
}

// Deposit routes USDC into the pool and credits the issued units to the owner
func (s *YieldService) Deposit(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrZeroAmount
	}

	unlock := s.ownerLocks.lock(ownerID)
	defer unlock()

	position, err := s.positionRepo.GetOrCreate(ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	units, err := s.poolAdapter.DepositAsset(ctx, amount)
	if err != nil {
		return decimal.Zero, err
	}

	if err := position.AddShares(units, amount); err != nil {
		return decimal.Zero, err
	}

	if err := s.positionRepo.Update(position); err != nil {
		return decimal.Zero, err
	}

	s.auditLogger.LogPoolForwarded(ctx, ownerID, amount.String(), units.String())

	return units, nil
}

// Withdraw burns the owner's units and returns the redeemed USDC
func (s *YieldService) Withdraw(ctx context.Context, ownerID uuid.UUID, shareUnits decimal.Decimal) (decimal.Decimal, error) {
	if shareUnits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrZeroAmount
	}

	unlock := s.ownerLocks.lock(ownerID)
	defer unlock()

	return s.burnUnits(ctx, ownerID, shareUnits)
}

// burnUnits redeems units against the pool and debits the position. The
// caller must hold the owner's mutex.
func (s *YieldService) burnUnits(ctx context.Context, ownerID uuid.UUID, shareUnits decimal.Decimal) (decimal.Decimal, error) {
	position, err := s.positionRepo.GetByOwnerID(ownerID)
	if err != nil {
		return decimal.Zero, err
	}

	if shareUnits.GreaterThan(position.ShareUnits) {
		return decimal.Zero, ErrInsufficientLiquidity
	}

	amountOut, err := s.poolAdapter.WithdrawAsset(ctx, shareUnits)
	if err != nil {
		return decimal.Zero, err
	}

	if err := position.BurnShares(shareUnits); err != nil {
		return decimal.Zero, err
	}

	if err := s.positionRepo.Update(position); err != nil {
		return decimal.Zero, err
	}

	s.auditLogger.LogPoolRedemption(ctx, ownerID, shareUnits.String(), amountOut.String())

	return amountOut, nil
}

// RedeemForAmount burns just enough of the owner's position to recover the
// requested USDC amount. The burn count is the proportional share
// units*needed/value, floor-rounded so redemption never overshoots the
// position; a request for the full value burns the whole position.
func (s *YieldService) RedeemForAmount(ctx context.Context, ownerID uuid.UUID, amountNeeded decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if amountNeeded.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, ErrZeroAmount
	}

	unlock := s.ownerLocks.lock(ownerID)
	defer unlock()

	position, err := s.positionRepo.GetByOwnerID(ownerID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	if !position.HasShares() {
		return decimal.Zero, decimal.Zero, ErrInsufficientLiquidity
	}

	value, err := s.valueOfUnits(ctx, position.ShareUnits)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	if value.LessThan(amountNeeded) {
		return decimal.Zero, decimal.Zero, ErrInsufficientLiquidity
	}

	unitsToBurn := position.ShareUnits
	if value.GreaterThan(amountNeeded) {
		unitsToBurn = position.ShareUnits.Mul(amountNeeded).Div(value).RoundDown(shareUnitPrecision)
	}

	if unitsToBurn.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, ErrInvalidAmount
	}

	amountOut, err := s.burnUnits(ctx, ownerID, unitsToBurn)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return unitsToBurn, amountOut, nil
}

// GetUserValue prices the owner's position from the live reserves
func (s *YieldService) GetUserValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	position, err := s.positionRepo.GetByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPositionNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	if !position.HasShares() {
		return decimal.Zero, nil
	}

	return s.valueOfUnits(ctx, position.ShareUnits)
}

// GetUserShareUnits returns the owner's outstanding units
func (s *YieldService) GetUserShareUnits(ownerID uuid.UUID) (decimal.Decimal, error) {
	position, err := s.positionRepo.GetByOwnerID(ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPositionNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return position.ShareUnits, nil
}

// GetTotalShareUnits returns the units held across all ledger owners
func (s *YieldService) GetTotalShareUnits() (decimal.Decimal, error) {
	return s.positionRepo.TotalShareUnits()
}

func (s *YieldService) valueOfUnits(ctx context.Context, units decimal.Decimal) (decimal.Decimal, error) {
	poolValue, err := s.poolAdapter.PoolValueInPrimary(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	totalUnits, err := s.poolAdapter.TotalPoolUnits(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	if totalUnits.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("pool has no outstanding units")
	}

	return poolValue.Mul(units).Div(totalUnits).RoundDown(6), nil
}
