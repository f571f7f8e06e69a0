package services_test

import (
	"context"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, id int64) (*domain.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListRecentSales(ctx context.Context, limit int, after *domain.SaleCursor) ([]domain.Sale, error) {
	args := m.Called(ctx, limit, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) (int64, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) ListInventoryByDate(ctx context.Context, date string) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) UpsertInventory(ctx context.Context, record domain.InventoryRecord) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) AdjustCurrentStock(ctx context.Context, commodity, date string, delta decimal.Decimal) (bool, error) {
	args := m.Called(ctx, commodity, date, delta)
	return args.Bool(0), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPendingPayment(ctx context.Context, vendorName string) (*domain.PendingPayment, error) {
	args := m.Called(ctx, vendorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingPayment), args.Error(1)
}

func (m *MockPaymentRepository) ListOutstandingPayments(ctx context.Context) ([]domain.PendingPayment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingPayment), args.Error(1)
}

func (m *MockPaymentRepository) SavePendingPayment(ctx context.Context, payment domain.PendingPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) AdjustPendingBalance(ctx context.Context, vendorName string, delta decimal.Decimal, date string) (*domain.PendingPayment, decimal.Decimal, error) {
	args := m.Called(ctx, vendorName, delta, date)
	if args.Get(0) == nil {
		return nil, args.Get(1).(decimal.Decimal), args.Error(2)
	}
	return args.Get(0).(*domain.PendingPayment), args.Get(1).(decimal.Decimal), args.Error(2)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindSetting(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) SaveSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) GetTotals(ctx context.Context, key string) (*domain.SalesTotals, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesTotals), args.Error(1)
}

func (m *MockSummaryCache) SetTotals(ctx context.Context, key string, totals domain.SalesTotals) error {
	args := m.Called(ctx, key, totals)
	return args.Error(0)
}

func (m *MockSummaryCache) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Collaborator service mocks ---

type MockInventoryConsumer struct {
	mock.Mock
}

func (m *MockInventoryConsumer) ApplyConsumption(ctx context.Context, commodity string, quantity decimal.Decimal, date string) error {
	args := m.Called(ctx, commodity, quantity, date)
	return args.Error(0)
}

type MockPaymentCharger struct {
	mock.Mock
}

func (m *MockPaymentCharger) ApplyCharge(ctx context.Context, vendorName string, amount decimal.Decimal, date string) error {
	args := m.Called(ctx, vendorName, amount, date)
	return args.Error(0)
}

type MockSummaryInvalidator struct {
	mock.Mock
}

func (m *MockSummaryInvalidator) InvalidateSummaries(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSetting(ctx context.Context, key, def string) (string, error) {
	args := m.Called(ctx, key, def)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsService) SetSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingsService) DailyTarget(ctx context.Context) decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal)
}

func (m *MockSettingsService) SaleDefaults(ctx context.Context) domain.SaleDefaults {
	args := m.Called(ctx)
	return args.Get(0).(domain.SaleDefaults)
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(want decimal.Decimal) any {
	return mock.MatchedBy(func(got decimal.Decimal) bool { return got.Equal(want) })
}
