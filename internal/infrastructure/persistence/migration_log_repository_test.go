package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/shared"
)

// newMockMigrationLogRepository creates a repository with a mocked SQL connection
func newMockMigrationLogRepository(t *testing.T) (*GormMigrationLogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormMigrationLogRepository(gormDB), mock, mockDB
}

func TestGormMigrationLogRepository_FindByID_NotFound(t *testing.T) {
	repo, mock, mockDB := newMockMigrationLogRepository(t)
	defer mockDB.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "migration_logs" WHERE id = \$1 ORDER BY .* LIMIT .*`).
		WithArgs(id, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.FindByID(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormMigrationLogRepository_SaveAndReload(t *testing.T) {
	ctx := context.Background()
	repo := NewGormMigrationLogRepository(newTestDB(t))

	log, err := migration.NewMigrationLog(migration.SyncTypeProducts, "api")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, log))

	t.Run("progress snapshot updates the same row", func(t *testing.T) {
		require.NoError(t, log.RecordProgress(10, 6, 3, 1, 0))
		require.NoError(t, repo.Save(ctx, log))

		got, err := repo.FindByID(ctx, log.ID)
		require.NoError(t, err)
		assert.Equal(t, migration.SyncStatusRunning, got.Status)
		assert.Equal(t, 10, got.Processed)
		assert.Equal(t, 6, got.Created)
	})

	t.Run("finalization persists errors", func(t *testing.T) {
		errs := []migration.SyncError{{RecordID: "SKU-9", Message: "invalid price"}}
		require.NoError(t, log.Complete(20, 15, 3, 1, 1, errs))
		require.NoError(t, repo.Save(ctx, log))

		got, err := repo.FindByID(ctx, log.ID)
		require.NoError(t, err)
		assert.Equal(t, migration.SyncStatusCompletedWithErrors, got.Status)
		require.Len(t, got.Errors, 1)
		assert.Equal(t, "SKU-9", got.Errors[0].RecordID)
		assert.NotNil(t, got.CompletedAt)
	})
}

func TestGormMigrationLogRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewGormMigrationLogRepository(newTestDB(t))

	for _, st := range []migration.SyncType{
		migration.SyncTypeProducts,
		migration.SyncTypeCustomers,
		migration.SyncTypeOrders,
	} {
		log, err := migration.NewMigrationLog(st, "cli")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, log))
	}

	t.Run("unfiltered returns everything", func(t *testing.T) {
		logs, total, err := repo.FindAll(ctx, migration.LogFilter{}, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, logs, 3)
	})

	t.Run("filter by sync type", func(t *testing.T) {
		st := migration.SyncTypeOrders
		logs, total, err := repo.FindAll(ctx, migration.LogFilter{SyncType: &st}, 1, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, logs, 1)
		assert.Equal(t, migration.SyncTypeOrders, logs[0].SyncType)
	})

	t.Run("pagination caps the page size", func(t *testing.T) {
		logs, total, err := repo.FindAll(ctx, migration.LogFilter{}, 1, 2)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, logs, 2)
	})
}
