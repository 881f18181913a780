package repositories_test

import (
	"testing"

	"stablestash/internal/database"
	"stablestash/internal/models"
	"stablestash/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuditRepo(t *testing.T) repositories.AuditLogRepositoryInterface {
	t.Helper()
	db := database.SetupTestDB(t)
	return repositories.NewAuditLogRepository(db.DB)
}

func newAuditLog(ownerID uuid.UUID, action string) *models.AuditLog {
	return &models.AuditLog{
		OwnerID:    &ownerID,
		Action:     action,
		Resource:   "savings_account",
		ResourceID: uuid.NewString(),
		CallerID:   ownerID.String(),
		Metadata:   models.JSONBMap{"amount": "10"},
	}
}

func TestAuditLogRepository_Create(t *testing.T) {
	repo := newAuditRepo(t)
	ownerID := uuid.New()

	log := newAuditLog(ownerID, models.AuditActionDeposit)
	require.NoError(t, repo.Create(log))

	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())
}

func TestAuditLogRepository_GetByOwnerID(t *testing.T) {
	repo := newAuditRepo(t)
	ownerID := uuid.New()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(newAuditLog(ownerID, models.AuditActionDeposit)))
	}
	require.NoError(t, repo.Create(newAuditLog(uuid.New(), models.AuditActionDeposit)))

	logs, total, err := repo.GetByOwnerID(ownerID, 0, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, logs, 2)
}

func TestAuditLogRepository_GetByAction(t *testing.T) {
	repo := newAuditRepo(t)

	require.NoError(t, repo.Create(newAuditLog(uuid.New(), models.AuditActionDeposit)))
	require.NoError(t, repo.Create(newAuditLog(uuid.New(), models.AuditActionWithdrawal)))
	require.NoError(t, repo.Create(newAuditLog(uuid.New(), models.AuditActionWithdrawal)))

	logs, total, err := repo.GetByAction(models.AuditActionWithdrawal, 0, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, logs, 2)
	for _, log := range logs {
		assert.Equal(t, models.AuditActionWithdrawal, log.Action)
	}
}
