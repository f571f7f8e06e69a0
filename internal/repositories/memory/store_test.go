package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	"github.com/SscSPs/produce_ledger/internal/models"
	"github.com/SscSPs/produce_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaults = domain.SaleDefaults{Commodity: "Tomatoes", Unit: "trays"}

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore(defaults, domain.DefaultSeed(defaults, "50"))
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func TestInitializeKeepsUserSettings(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repos := store.Provider()

	require.NoError(t, repos.SettingRepo.SaveSetting(ctx, domain.SettingDailyTarget, "80"))
	require.NoError(t, store.Initialize(ctx))

	setting, err := repos.SettingRepo.FindSetting(ctx, domain.SettingDailyTarget)
	require.NoError(t, err)
	assert.Equal(t, "80", setting.Value)

	types, err := repos.CommodityRepo.ListCommodityTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, len(domain.DefaultCommodityTypes()))
	assert.Equal(t, "Cabbage", types[0].Name)
}

func TestInventoryUpsertReplacesAndAdjusts(t *testing.T) {
	ctx := context.Background()
	repos := newStore(t).Provider()

	first, err := repos.InventoryRepo.UpsertInventory(ctx, domain.InventoryRecord{
		Commodity: "Tomatoes", Date: "2024-01-01",
		InitialStock: decimal.NewFromInt(100), CurrentStock: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	second, err := repos.InventoryRepo.UpsertInventory(ctx, domain.InventoryRecord{
		Commodity: "Tomatoes", Date: "2024-01-01",
		InitialStock: decimal.NewFromInt(40), CurrentStock: decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	found, err := repos.InventoryRepo.AdjustCurrentStock(ctx, "Tomatoes", "2024-01-01", decimal.NewFromInt(-45))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repos.InventoryRepo.AdjustCurrentStock(ctx, "Onions", "2024-01-01", decimal.NewFromInt(-1))
	require.NoError(t, err)
	assert.False(t, found)

	records, err := repos.InventoryRepo.ListInventoryByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].CurrentStock.Equal(decimal.NewFromInt(-5)))
}

func TestSaleListingFiltersAndOrder(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repos := store.Provider()

	mk := func(vendor, date, at string, status domain.PaymentStatus) domain.Sale {
		return domain.Sale{
			VendorName: vendor, Commodity: "Tomatoes", Unit: "trays",
			Quantity: decimal.NewFromInt(1), RatePerUnit: decimal.NewFromInt(10), TotalAmount: decimal.NewFromInt(10),
			PaymentMethod: domain.Cash, PaymentStatus: status, SaleDate: date, SaleTime: at,
		}
	}
	_, err := repos.SaleRepo.SaveSale(ctx, mk("Ravi Traders", "2024-01-01", "08:00:00", domain.Paid))
	require.NoError(t, err)
	_, err = repos.SaleRepo.SaveSale(ctx, mk("Sita", "2024-01-02", "07:00:00", domain.Pending))
	require.NoError(t, err)
	_, err = repos.SaleRepo.SaveSale(ctx, mk("ravi & sons", "2024-01-02", "09:00:00", domain.Paid))
	require.NoError(t, err)
	legacyID := store.InsertRawSale(models.Sale{
		VendorName: "Legacy Ravi", TotalAmount: decimal.NewFromInt(60), PaymentMethod: "cash",
		SaleDate: "2023-12-31", SaleTime: "10:00:00",
		TraysSold: decimal.NewNullDecimal(decimal.NewFromInt(3)), RatePerTray: decimal.NewNullDecimal(decimal.NewFromInt(20)),
	})

	sales, err := repos.SaleRepo.ListSales(ctx, domain.SaleFilter{VendorQuery: "RAVI"})
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "ravi & sons", sales[0].VendorName)
	assert.Equal(t, "Ravi Traders", sales[1].VendorName)
	assert.Equal(t, legacyID, sales[2].ID)
	assert.True(t, sales[2].Quantity.Equal(decimal.NewFromInt(3)))

	sales, err = repos.SaleRepo.ListSales(ctx, domain.SaleFilter{StartDate: "2024-01-02", EndDate: "2024-01-02", PaymentStatus: domain.Pending})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Sita", sales[0].VendorName)

	page, err := repos.SaleRepo.ListRecentSales(ctx, 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	last := page[1]
	rest, err := repos.SaleRepo.ListRecentSales(ctx, 2, &domain.SaleCursor{SaleDate: last.SaleDate, SaleTime: last.SaleTime, ID: last.ID})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "Ravi Traders", rest[0].VendorName)
}

func TestSaleDeleteAndLookup(t *testing.T) {
	ctx := context.Background()
	repos := newStore(t).Provider()

	id, err := repos.SaleRepo.SaveSale(ctx, domain.Sale{VendorName: "A", SaleDate: "2024-01-01", SaleTime: "08:00:00"})
	require.NoError(t, err)

	removed, err := repos.SaleRepo.DeleteSale(ctx, id)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repos.SaleRepo.DeleteSale(ctx, id)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repos.SaleRepo.FindSaleByID(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCommodityDuplicate(t *testing.T) {
	ctx := context.Background()
	repos := newStore(t).Provider()

	_, err := repos.CommodityRepo.SaveCommodityType(ctx, domain.CommodityType{Name: "Tomatoes", DefaultUnit: "trays", IsActive: true})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	saved, err := repos.CommodityRepo.SaveCommodityType(ctx, domain.CommodityType{Name: "Okra", DefaultUnit: "kg", IsActive: true})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
}

func TestOutstandingPaymentsOrder(t *testing.T) {
	ctx := context.Background()
	repos := newStore(t).Provider()

	require.NoError(t, repos.PaymentRepo.SavePendingPayment(ctx, domain.PendingPayment{VendorName: "A", TotalDueAmount: decimal.NewFromInt(10), LastTransactionDate: "2024-01-01"}))
	require.NoError(t, repos.PaymentRepo.SavePendingPayment(ctx, domain.PendingPayment{VendorName: "B", TotalDueAmount: decimal.NewFromInt(20), LastTransactionDate: "2024-01-03"}))
	require.NoError(t, repos.PaymentRepo.SavePendingPayment(ctx, domain.PendingPayment{VendorName: "C", TotalDueAmount: decimal.Zero, LastTransactionDate: "2024-01-05"}))

	outstanding, err := repos.PaymentRepo.ListOutstandingPayments(ctx)
	require.NoError(t, err)
	require.Len(t, outstanding, 2)
	assert.Equal(t, "B", outstanding[0].VendorName)
	assert.Equal(t, "A", outstanding[1].VendorName)
}

func TestAdjustPendingBalanceConcurrentCharges(t *testing.T) {
	ctx := context.Background()
	repos := newStore(t).Provider()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := repos.PaymentRepo.AdjustPendingBalance(ctx, "Ravi", decimal.NewFromInt(10), "2024-01-01")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	payment, err := repos.PaymentRepo.FindPendingPayment(ctx, "Ravi")
	require.NoError(t, err)
	assert.True(t, payment.TotalDueAmount.Equal(decimal.NewFromInt(10*workers)), payment.TotalDueAmount.String())
}

func TestAdjustPendingBalanceClampsAndReportsPrior(t *testing.T) {
	ctx := context.Background()
	repos := newStore(t).Provider()

	_, _, err := repos.PaymentRepo.AdjustPendingBalance(ctx, "Ghost", decimal.NewFromInt(-5), "2024-01-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, prior, err := repos.PaymentRepo.AdjustPendingBalance(ctx, "Ravi", decimal.NewFromInt(30), "2024-01-01")
	require.NoError(t, err)
	assert.True(t, prior.IsZero())

	updated, prior, err := repos.PaymentRepo.AdjustPendingBalance(ctx, "Ravi", decimal.NewFromInt(-100), "2024-01-02")
	require.NoError(t, err)
	assert.True(t, prior.Equal(decimal.NewFromInt(30)))
	assert.True(t, updated.TotalDueAmount.IsZero())
	assert.Equal(t, "2024-01-02", updated.LastTransactionDate)
}
