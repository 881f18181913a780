package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustodyInsufficientFunds = errors.New("owner custody has insufficient funds")
)

// InMemoryCustodyClient is the development custody backend. It tracks a USDC
// balance per owner and moves funds atomically under a single lock.
// Production deployments inject a client backed by the custody provider's API.
type InMemoryCustodyClient struct {
	mu       sync.Mutex
	balances map[uuid.UUID]decimal.Decimal
	logger   *slog.Logger
}

func NewInMemoryCustodyClient(logger *slog.Logger) *InMemoryCustodyClient {
	return &InMemoryCustodyClient{
		balances: make(map[uuid.UUID]decimal.Decimal),
		logger:   logger,
	}
}

// Fund seeds an owner balance, used by dev bootstrap and tests
func (c *InMemoryCustodyClient) Fund(ownerID uuid.UUID, amount decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[ownerID] = c.balances[ownerID].Add(amount)
}

// Balance returns the owner's custody balance
func (c *InMemoryCustodyClient) Balance(ownerID uuid.UUID) decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances[ownerID]
}

// Pull moves funds from owner custody into ledger custody
func (c *InMemoryCustodyClient) Pull(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	balance := c.balances[ownerID]
	if balance.LessThan(amount) {
		return ErrCustodyInsufficientFunds
	}

	c.balances[ownerID] = balance.Sub(amount)

	c.logger.Debug("custody pull",
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount.String()),
	)

	return nil
}

// Push moves funds from ledger custody back to the owner
func (c *InMemoryCustodyClient) Push(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.balances[ownerID] = c.balances[ownerID].Add(amount)

	c.logger.Debug("custody push",
		slog.String("owner_id", ownerID.String()),
		slog.String("amount", amount.String()),
	)

	return nil
}
