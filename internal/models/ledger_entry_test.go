package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validEntry() *LedgerEntry {
	return &LedgerEntry{
		AccountID:     uuid.New(),
		OwnerID:       uuid.New(),
		Kind:          EntryKindDeposit,
		Amount:        decimal.NewFromInt(25),
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(125),
	}
}

func TestLedgerEntry_Validate(t *testing.T) {
	t.Run("valid credit entry", func(t *testing.T) {
		assert.NoError(t, validEntry().Validate())
	})

	t.Run("valid withdrawal entry", func(t *testing.T) {
		entry := validEntry()
		entry.Kind = EntryKindWithdrawal
		entry.BalanceAfter = decimal.NewFromInt(75)

		assert.NoError(t, entry.Validate())
	})

	t.Run("unknown kind", func(t *testing.T) {
		entry := validEntry()
		entry.Kind = "refund"

		assert.ErrorIs(t, entry.Validate(), ErrInvalidEntryKind)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		entry := validEntry()
		entry.Amount = decimal.Zero

		assert.ErrorIs(t, entry.Validate(), ErrInvalidAmount)
	})

	t.Run("credit with inconsistent balances", func(t *testing.T) {
		entry := validEntry()
		entry.BalanceAfter = decimal.NewFromInt(124)

		assert.Error(t, entry.Validate())
	})

	t.Run("withdrawal with credit-direction balances", func(t *testing.T) {
		entry := validEntry()
		entry.Kind = EntryKindWithdrawal

		assert.Error(t, entry.Validate())
	})
}

func TestLedgerEntry_IsCredit(t *testing.T) {
	tests := []struct {
		kind     string
		isCredit bool
	}{
		{EntryKindDeposit, true},
		{EntryKindCreditedDeposit, true},
		{EntryKindAutoSave, true},
		{EntryKindWithdrawal, false},
	}

	for _, tt := range tests {
		entry := &LedgerEntry{Kind: tt.kind}
		assert.Equal(t, tt.isCredit, entry.IsCredit(), tt.kind)
	}
}

func TestGenerateEntryReference(t *testing.T) {
	ref := GenerateEntryReference()

	assert.True(t, strings.HasPrefix(ref, "SAV-"))
	assert.NotEqual(t, ref, GenerateEntryReference())
}

func TestIsValidEntryKind(t *testing.T) {
	assert.True(t, IsValidEntryKind(EntryKindDeposit))
	assert.True(t, IsValidEntryKind(EntryKindCreditedDeposit))
	assert.True(t, IsValidEntryKind(EntryKindAutoSave))
	assert.True(t, IsValidEntryKind(EntryKindWithdrawal))
	assert.False(t, IsValidEntryKind("transfer"))
}
