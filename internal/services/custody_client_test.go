package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCustodyClient_PullAndPush(t *testing.T) {
	client := NewInMemoryCustodyClient(discardLogger())
	ownerID := uuid.New()

	client.Fund(ownerID, decimal.NewFromInt(100))

	require.NoError(t, client.Pull(context.Background(), ownerID, decimal.NewFromInt(60)))
	assert.True(t, client.Balance(ownerID).Equal(decimal.NewFromInt(40)))

	require.NoError(t, client.Push(context.Background(), ownerID, decimal.NewFromInt(25)))
	assert.True(t, client.Balance(ownerID).Equal(decimal.NewFromInt(65)))
}

func TestInMemoryCustodyClient_Pull_InsufficientFunds(t *testing.T) {
	client := NewInMemoryCustodyClient(discardLogger())
	ownerID := uuid.New()

	client.Fund(ownerID, decimal.NewFromInt(10))

	err := client.Pull(context.Background(), ownerID, decimal.NewFromInt(11))

	assert.ErrorIs(t, err, ErrCustodyInsufficientFunds)
	assert.True(t, client.Balance(ownerID).Equal(decimal.NewFromInt(10)))
}

func TestInMemoryCustodyClient_RejectsNonPositiveAmounts(t *testing.T) {
	client := NewInMemoryCustodyClient(discardLogger())
	ownerID := uuid.New()

	assert.ErrorIs(t, client.Pull(context.Background(), ownerID, decimal.Zero), ErrInvalidAmount)
	assert.ErrorIs(t, client.Push(context.Background(), ownerID, decimal.NewFromInt(-1)), ErrInvalidAmount)
}
