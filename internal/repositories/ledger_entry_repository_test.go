package repositories_test

import (
	"fmt"
	"testing"

	"stablestash/internal/database"
	"stablestash/internal/models"
	"stablestash/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntryRepo(t *testing.T) repositories.LedgerEntryRepositoryInterface {
	t.Helper()
	db := database.SetupTestDB(t)
	return repositories.NewLedgerEntryRepository(db.DB)
}

func newEntry(accountID, ownerID uuid.UUID, amount decimal.Decimal) *models.LedgerEntry {
	return &models.LedgerEntry{
		AccountID:     accountID,
		OwnerID:       ownerID,
		Kind:          models.EntryKindDeposit,
		Amount:        amount,
		BalanceBefore: decimal.Zero,
		BalanceAfter:  amount,
	}
}

func TestLedgerEntryRepository_Create(t *testing.T) {
	repo := newEntryRepo(t)

	entry := newEntry(uuid.New(), uuid.New(), decimal.NewFromInt(10))
	require.NoError(t, repo.Create(entry))

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Contains(t, entry.Reference, "SAV-")
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestLedgerEntryRepository_Create_RejectsBrokenBalance(t *testing.T) {
	repo := newEntryRepo(t)

	entry := newEntry(uuid.New(), uuid.New(), decimal.NewFromInt(10))
	entry.BalanceAfter = decimal.NewFromInt(99)

	assert.Error(t, repo.Create(entry))
}

func TestLedgerEntryRepository_GetByAccountID(t *testing.T) {
	repo := newEntryRepo(t)
	accountID := uuid.New()
	ownerID := uuid.New()

	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Create(newEntry(accountID, ownerID, decimal.NewFromInt(int64(i)))))
	}
	// An entry on another account must not leak in.
	require.NoError(t, repo.Create(newEntry(uuid.New(), uuid.New(), decimal.NewFromInt(100))))

	entries, total, err := repo.GetByAccountID(accountID, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, entries, 3)

	entries, total, err = repo.GetByAccountID(accountID, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, entries, 1)
}

func TestLedgerEntryRepository_GetRecentByOwnerID(t *testing.T) {
	repo := newEntryRepo(t)
	ownerID := uuid.New()
	accountID := uuid.New()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(newEntry(accountID, ownerID, decimal.NewFromInt(int64(i)))))
	}

	entries, err := repo.GetRecentByOwnerID(ownerID, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestLedgerEntryRepository_GetByReference(t *testing.T) {
	repo := newEntryRepo(t)

	entry := newEntry(uuid.New(), uuid.New(), decimal.NewFromInt(10))
	entry.Reference = fmt.Sprintf("SAV-test-%s", uuid.NewString())
	require.NoError(t, repo.Create(entry))

	found, err := repo.GetByReference(entry.Reference)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, found.ID)

	_, err = repo.GetByReference("SAV-missing")
	assert.ErrorIs(t, err, repositories.ErrEntryNotFound)
}
