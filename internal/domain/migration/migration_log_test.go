package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationLog(t *testing.T) {
	t.Run("Valid sync type starts running", func(t *testing.T) {
		log, err := NewMigrationLog(SyncTypeProducts, "admin")
		require.NoError(t, err)

		assert.Equal(t, SyncStatusRunning, log.Status)
		assert.Equal(t, "admin", log.TriggeredBy)
		assert.False(t, log.StartedAt.IsZero())
		assert.Nil(t, log.CompletedAt)
	})

	t.Run("Invalid sync type rejected", func(t *testing.T) {
		_, err := NewMigrationLog(SyncType("inventory"), "admin")
		assert.Error(t, err)
	})
}

func TestMigrationLogLifecycle(t *testing.T) {
	t.Run("Progress snapshots update counters", func(t *testing.T) {
		log, err := NewMigrationLog(SyncTypeCustomers, "cli")
		require.NoError(t, err)

		require.NoError(t, log.RecordProgress(10, 6, 3, 0, 1))
		assert.Equal(t, 10, log.Processed)
		assert.Equal(t, 6, log.Created)
		assert.Equal(t, 1, log.Failed)
		assert.Equal(t, SyncStatusRunning, log.Status)
	})

	t.Run("Complete without errors", func(t *testing.T) {
		log, err := NewMigrationLog(SyncTypeProducts, "cli")
		require.NoError(t, err)

		require.NoError(t, log.Complete(5, 5, 0, 0, 0, nil))
		assert.Equal(t, SyncStatusCompleted, log.Status)
		require.NotNil(t, log.CompletedAt)
	})

	t.Run("Complete with failures flags errors", func(t *testing.T) {
		log, err := NewMigrationLog(SyncTypeOrders, "cli")
		require.NoError(t, err)

		errs := []SyncError{{RecordID: "1001", Message: "insert failed"}}
		require.NoError(t, log.Complete(3, 2, 0, 0, 1, errs))
		assert.Equal(t, SyncStatusCompletedWithErrors, log.Status)
		assert.True(t, log.Status.IsTerminal())
	})

	t.Run("Cannot complete twice", func(t *testing.T) {
		log, err := NewMigrationLog(SyncTypeProducts, "cli")
		require.NoError(t, err)

		require.NoError(t, log.Complete(0, 0, 0, 0, 0, nil))
		assert.Error(t, log.Complete(0, 0, 0, 0, 0, nil))
		assert.Error(t, log.RecordProgress(1, 1, 0, 0, 0))
	})
}

func TestMigrationLogErrorsJSON(t *testing.T) {
	log, err := NewMigrationLog(SyncTypeOrders, "api")
	require.NoError(t, err)

	raw, err := log.ErrorsJSON()
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	require.NoError(t, log.Complete(2, 1, 0, 0, 1, []SyncError{
		{RecordID: "2002", Message: "duplicate key"},
	}))

	raw, err = log.ErrorsJSON()
	require.NoError(t, err)

	restored, err := NewMigrationLog(SyncTypeOrders, "api")
	require.NoError(t, err)
	require.NoError(t, restored.SetErrorsFromJSON(raw))
	require.Len(t, restored.Errors, 1)
	assert.Equal(t, "2002", restored.Errors[0].RecordID)
}
