package syncapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
)

func newCustomerSyncService(fetcher *MockFetcher, profiles *MockProfileRepository, logs *MockMigrationLogRepository) *CustomerSyncService {
	return NewCustomerSyncService(fetcher, profiles, logs, zap.NewNop(), Config{})
}

func TestCustomerSyncService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new and updates existing profiles", func(t *testing.T) {
		fetcher := new(MockFetcher)
		profiles := new(MockProfileRepository)
		logs := new(MockMigrationLogRepository)
		expectLogSaves(logs)

		recs := []legacy.Customer{
			{Email: "known@example.com", FirstName: "Known"},
			{Email: "new@example.com", FirstName: "New"},
		}
		fetcher.On("FetchCustomers", mock.Anything, 0).Return(recs, nil)
		profiles.On("ListEmails", mock.Anything).Return([]string{"known@example.com"}, nil)
		profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(nil)

		summary, err := newCustomerSyncService(fetcher, profiles, logs).Run(ctx, CustomerSyncOptions{})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Created)
		assert.Equal(t, 1, summary.Updated)
		assert.Equal(t, 2, summary.Processed)
		assert.Equal(t, migration.SyncStatusCompleted, summary.Status)
	})

	t.Run("matches existing profiles case-insensitively", func(t *testing.T) {
		fetcher := new(MockFetcher)
		profiles := new(MockProfileRepository)
		logs := new(MockMigrationLogRepository)
		expectLogSaves(logs)

		fetcher.On("FetchCustomers", mock.Anything, 0).
			Return([]legacy.Customer{{Email: "Jane@Example.COM", FirstName: "Jane"}}, nil)
		profiles.On("ListEmails", mock.Anything).Return([]string{"jane@example.com"}, nil)

		var upserted *profile.Profile
		profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).
			Run(func(args mock.Arguments) {
				upserted = args.Get(1).(*profile.Profile)
			}).Return(nil)

		summary, err := newCustomerSyncService(fetcher, profiles, logs).Run(ctx, CustomerSyncOptions{})
		require.NoError(t, err)

		assert.Equal(t, 0, summary.Created)
		assert.Equal(t, 1, summary.Updated)
		require.NotNil(t, upserted)
		assert.Equal(t, "jane@example.com", upserted.Email)
	})

	t.Run("upsert failure records the email", func(t *testing.T) {
		fetcher := new(MockFetcher)
		profiles := new(MockProfileRepository)
		logs := new(MockMigrationLogRepository)
		expectLogSaves(logs)

		fetcher.On("FetchCustomers", mock.Anything, 0).
			Return([]legacy.Customer{{Email: "bad@example.com"}}, nil)
		profiles.On("ListEmails", mock.Anything).Return([]string{}, nil)
		profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).
			Return(errors.New("connection reset"))

		summary, err := newCustomerSyncService(fetcher, profiles, logs).Run(ctx, CustomerSyncOptions{})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, migration.SyncStatusCompletedWithErrors, summary.Status)
		require.Len(t, summary.Errors, 1)
		assert.Equal(t, "bad@example.com", summary.Errors[0].RecordID)
	})

	t.Run("preload failure finalizes with a synthetic error", func(t *testing.T) {
		fetcher := new(MockFetcher)
		profiles := new(MockProfileRepository)
		logs := new(MockMigrationLogRepository)
		expectLogSaves(logs)

		fetcher.On("FetchCustomers", mock.Anything, 0).
			Return([]legacy.Customer{{Email: "a@example.com"}}, nil)
		profiles.On("ListEmails", mock.Anything).Return([]string{}, errors.New("db down"))

		summary, err := newCustomerSyncService(fetcher, profiles, logs).Run(ctx, CustomerSyncOptions{})
		require.NoError(t, err)

		assert.Equal(t, migration.SyncStatusCompletedWithErrors, summary.Status)
		assert.Equal(t, 0, summary.Processed)
		require.Len(t, summary.Errors, 1)
		assert.Equal(t, "preload", summary.Errors[0].RecordID)
		profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("log creation failure aborts the run", func(t *testing.T) {
		fetcher := new(MockFetcher)
		profiles := new(MockProfileRepository)
		logs := new(MockMigrationLogRepository)
		logs.On("Save", mock.Anything, mock.AnythingOfType("*migration.MigrationLog")).
			Return(errors.New("db down"))

		summary, err := newCustomerSyncService(fetcher, profiles, logs).Run(ctx, CustomerSyncOptions{})
		require.Error(t, err)
		assert.Nil(t, summary)
		fetcher.AssertNotCalled(t, "FetchCustomers", mock.Anything, mock.Anything)
	})
}

func TestCustomerSyncService_RunDocument(t *testing.T) {
	fetcher := new(MockFetcher)
	profiles := new(MockProfileRepository)
	logs := new(MockMigrationLogRepository)
	expectLogSaves(logs)

	profiles.On("ListEmails", mock.Anything).Return([]string{}, nil)
	profiles.On("Upsert", mock.Anything, mock.AnythingOfType("*profile.Profile")).Return(nil)

	doc := `<customers>
<customer><email>doc@example.com</email><firstname>Doc</firstname></customer>
</customers>`
	summary, err := newCustomerSyncService(fetcher, profiles, logs).RunDocument(context.Background(), doc, "upload")
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, migration.SyncTypeCustomers, summary.SyncType)
	fetcher.AssertNotCalled(t, "FetchCustomers", mock.Anything, mock.Anything)
}
