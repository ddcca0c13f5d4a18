package syncapp

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nickborrello/BayStateApp-sub000/internal/domain/catalog"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/trade"
)

// MockFetcher is a mock implementation of legacy.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchProducts(ctx context.Context, limit int) ([]legacy.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]legacy.Product), args.Error(1)
}

func (m *MockFetcher) FetchCustomers(ctx context.Context, limit int) ([]legacy.Customer, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]legacy.Customer), args.Error(1)
}

func (m *MockFetcher) FetchOrders(ctx context.Context, query legacy.OrderQuery) ([]legacy.Order, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]legacy.Order), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListSKUs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) ListSlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) SKUIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]uuid.UUID), args.Error(1)
}

func (m *MockProductRepository) Upsert(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of profile.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ListEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProfileRepository) EmailIndex(ctx context.Context) (map[string]uuid.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]uuid.UUID), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, p *profile.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of trade.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListOrderNumbers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *trade.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockMigrationLogRepository is a mock implementation of
// migration.MigrationLogRepository
type MockMigrationLogRepository struct {
	mock.Mock
}

func (m *MockMigrationLogRepository) Save(ctx context.Context, log *migration.MigrationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockMigrationLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*migration.MigrationLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*migration.MigrationLog), args.Error(1)
}

func (m *MockMigrationLogRepository) FindAll(ctx context.Context, filter migration.LogFilter, page, pageSize int) ([]migration.MigrationLog, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]migration.MigrationLog), args.Get(1).(int64), args.Error(2)
}
