package repositories_test

import (
	"testing"

	"stablestash/internal/database"
	"stablestash/internal/models"
	"stablestash/internal/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountRepo(t *testing.T) (repositories.SavingsAccountRepositoryInterface, *database.DB) {
	t.Helper()
	db := database.SetupTestDB(t)
	return repositories.NewSavingsAccountRepository(db.DB), db
}

func newAccount(ownerID uuid.UUID) *models.SavingsAccount {
	return &models.SavingsAccount{
		OwnerID:    ownerID,
		WeeklyGoal: decimal.NewFromFloat(gofakeit.Price(10, 500)),
		TrustMode:  models.TrustModeManual,
		Status:     models.AccountStatusActive,
	}
}

func TestSavingsAccountRepository_CreateAndGet(t *testing.T) {
	repo, _ := newAccountRepo(t)
	ownerID := uuid.New()

	account := newAccount(ownerID)
	require.NoError(t, repo.Create(account))
	assert.NotEqual(t, uuid.Nil, account.ID)

	found, err := repo.GetByOwnerID(ownerID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.True(t, found.WeeklyGoal.Equal(account.WeeklyGoal))
	assert.True(t, found.CurrentBalance.IsZero())
}

func TestSavingsAccountRepository_Create_DuplicateOwner(t *testing.T) {
	repo, _ := newAccountRepo(t)
	ownerID := uuid.New()

	require.NoError(t, repo.Create(newAccount(ownerID)))

	err := repo.Create(newAccount(ownerID))

	assert.ErrorIs(t, err, repositories.ErrAccountExists)
}

func TestSavingsAccountRepository_GetByOwnerID_NotFound(t *testing.T) {
	repo, _ := newAccountRepo(t)

	_, err := repo.GetByOwnerID(uuid.New())

	assert.ErrorIs(t, err, repositories.ErrAccountNotFound)
}

func TestSavingsAccountRepository_ExistsForOwner(t *testing.T) {
	repo, _ := newAccountRepo(t)
	ownerID := uuid.New()

	exists, err := repo.ExistsForOwner(ownerID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(newAccount(ownerID)))

	exists, err = repo.ExistsForOwner(ownerID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSavingsAccountRepository_Update(t *testing.T) {
	repo, _ := newAccountRepo(t)
	ownerID := uuid.New()

	account := newAccount(ownerID)
	require.NoError(t, repo.Create(account))

	require.NoError(t, account.Credit(decimal.NewFromInt(25)))
	require.NoError(t, repo.Update(account))

	found, err := repo.GetByOwnerID(ownerID)
	require.NoError(t, err)
	assert.True(t, found.CurrentBalance.Equal(decimal.NewFromInt(25)))
	assert.True(t, found.TotalDeposited.Equal(decimal.NewFromInt(25)))
}

func TestSavingsAccountRepository_List(t *testing.T) {
	repo, _ := newAccountRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(newAccount(uuid.New())))
	}

	accounts, total, err := repo.List(0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, accounts, 3)

	accounts, total, err = repo.List(3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, accounts, 2)
}

func TestSavingsAccountRepository_SumCurrentBalances(t *testing.T) {
	repo, _ := newAccountRepo(t)

	total, err := repo.SumCurrentBalances()
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	first := newAccount(uuid.New())
	require.NoError(t, first.Credit(decimal.RequireFromString("10.500000")))
	require.NoError(t, repo.Create(first))

	second := newAccount(uuid.New())
	require.NoError(t, second.Credit(decimal.RequireFromString("4.250000")))
	require.NoError(t, repo.Create(second))

	total, err = repo.SumCurrentBalances()
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("14.75")), "total %s", total)
}
