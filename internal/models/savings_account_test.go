package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeAccount() *SavingsAccount {
	return &SavingsAccount{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		WeeklyGoal: decimal.NewFromInt(50),
		TrustMode:  TrustModeManual,
		Status:     AccountStatusActive,
	}
}

func TestSavingsAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SavingsAccount)
		wantErr error
	}{
		{
			name:   "valid account",
			mutate: func(a *SavingsAccount) {},
		},
		{
			name: "invalid trust mode",
			mutate: func(a *SavingsAccount) {
				a.TrustMode = "supervised"
			},
			wantErr: ErrInvalidTrustMode,
		},
		{
			name: "invalid status",
			mutate: func(a *SavingsAccount) {
				a.Status = "suspended"
			},
			wantErr: ErrInvalidAccountStatus,
		},
		{
			name: "zero weekly goal",
			mutate: func(a *SavingsAccount) {
				a.WeeklyGoal = decimal.Zero
			},
			wantErr: ErrInvalidGoal,
		},
		{
			name: "negative balance",
			mutate: func(a *SavingsAccount) {
				a.CurrentBalance = decimal.NewFromInt(-1)
			},
			wantErr: ErrNegativeBalance,
		},
		{
			name: "balance out of step with running totals",
			mutate: func(a *SavingsAccount) {
				a.TotalDeposited = decimal.NewFromInt(100)
				a.TotalWithdrawn = decimal.NewFromInt(30)
				a.CurrentBalance = decimal.NewFromInt(71)
			},
			wantErr: ErrBalanceMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := activeAccount()
			tt.mutate(account)

			err := account.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSavingsAccount_CreditAndDebit(t *testing.T) {
	account := activeAccount()

	require.NoError(t, account.Credit(decimal.RequireFromString("25.500000")))
	require.NoError(t, account.Credit(decimal.RequireFromString("10.000001")))

	assert.True(t, account.CurrentBalance.Equal(decimal.RequireFromString("35.500001")))
	assert.True(t, account.TotalDeposited.Equal(decimal.RequireFromString("35.500001")))
	assert.NoError(t, account.Validate())

	require.NoError(t, account.Debit(decimal.RequireFromString("15.250001")))

	assert.True(t, account.CurrentBalance.Equal(decimal.RequireFromString("20.25")))
	assert.True(t, account.TotalWithdrawn.Equal(decimal.RequireFromString("15.250001")))
	assert.NoError(t, account.Validate())
}

func TestSavingsAccount_Debit_InsufficientFunds(t *testing.T) {
	account := activeAccount()
	require.NoError(t, account.Credit(decimal.NewFromInt(10)))

	err := account.Debit(decimal.RequireFromString("10.000001"))

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, account.CurrentBalance.Equal(decimal.NewFromInt(10)))
}

func TestSavingsAccount_Credit_Inactive(t *testing.T) {
	account := activeAccount()
	account.Status = AccountStatusInactive

	assert.ErrorIs(t, account.Credit(decimal.NewFromInt(5)), ErrAccountNotActive)
	assert.ErrorIs(t, account.Debit(decimal.NewFromInt(5)), ErrAccountNotActive)
}

func TestSavingsAccount_CreditRejectsNonPositive(t *testing.T) {
	account := activeAccount()

	assert.Error(t, account.Credit(decimal.Zero))
	assert.Error(t, account.Credit(decimal.NewFromInt(-3)))
	assert.Error(t, account.Debit(decimal.Zero))
}

func TestSavingsAccount_CanAutoSaveAt(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	interval := 24 * time.Hour

	t.Run("first save is always allowed", func(t *testing.T) {
		account := activeAccount()
		account.LastSaveAt = 0

		assert.True(t, account.CanAutoSaveAt(now, interval))
	})

	t.Run("within the window", func(t *testing.T) {
		account := activeAccount()
		account.LastSaveAt = now.Add(-23 * time.Hour).Unix()

		assert.False(t, account.CanAutoSaveAt(now, interval))
	})

	t.Run("exactly at the window boundary", func(t *testing.T) {
		account := activeAccount()
		account.LastSaveAt = now.Add(-24 * time.Hour).Unix()

		assert.True(t, account.CanAutoSaveAt(now, interval))
	})

	t.Run("one second before the boundary", func(t *testing.T) {
		account := activeAccount()
		account.LastSaveAt = now.Add(-24*time.Hour + time.Second).Unix()

		assert.False(t, account.CanAutoSaveAt(now, interval))
	})

	t.Run("past the window", func(t *testing.T) {
		account := activeAccount()
		account.LastSaveAt = now.Add(-48 * time.Hour).Unix()

		assert.True(t, account.CanAutoSaveAt(now, interval))
	})

	t.Run("inactive account never saves", func(t *testing.T) {
		account := activeAccount()
		account.Status = AccountStatusInactive
		account.LastSaveAt = 0

		assert.False(t, account.CanAutoSaveAt(now, interval))
	})
}

func TestSavingsAccount_MarkSaved(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	account := activeAccount()

	account.MarkSaved(now)

	assert.Equal(t, now.Unix(), account.LastSaveAt)
	assert.False(t, account.CanAutoSaveAt(now.Add(time.Hour), 24*time.Hour))
	assert.True(t, account.CanAutoSaveAt(now.Add(25*time.Hour), 24*time.Hour))
}

func TestIsValidTrustMode(t *testing.T) {
	assert.True(t, IsValidTrustMode(TrustModeManual))
	assert.True(t, IsValidTrustMode(TrustModeAuto))
	assert.False(t, IsValidTrustMode("MANUAL"))
	assert.False(t, IsValidTrustMode(""))
}

func TestIsValidAccountStatus(t *testing.T) {
	assert.True(t, IsValidAccountStatus(AccountStatusActive))
	assert.True(t, IsValidAccountStatus(AccountStatusInactive))
	assert.False(t, IsValidAccountStatus("closed"))
}
