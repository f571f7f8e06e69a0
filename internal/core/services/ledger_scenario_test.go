package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/produce_ledger/internal/core/ports/services"
	"github.com/SscSPs/produce_ledger/internal/core/services"
	"github.com/SscSPs/produce_ledger/internal/models"
	"github.com/SscSPs/produce_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerScenarioTestSuite drives the full service container over the
// in-memory store.
type LedgerScenarioTestSuite struct {
	suite.Suite
	store *memory.Store
	svc   *portssvc.ServiceContainer
}

func (suite *LedgerScenarioTestSuite) SetupTest() {
	suite.store = memory.NewStore(testDefaults, domain.DefaultSeed(testDefaults, "50"))
	suite.Require().NoError(suite.store.Initialize(context.Background()))
	suite.svc = services.NewServiceContainer(
		suite.store.Provider(),
		nil,
		services.ContainerConfig{Defaults: testDefaults, DailyTarget: decimal.NewFromInt(50)},
		services.WithClock(fixedClock),
	)
}

func (suite *LedgerScenarioTestSuite) intake(commodity string, stock, rate int64, date string) {
	_, err := suite.svc.Inventory.Intake(context.Background(), domain.IntakeInput{
		Commodity:    commodity,
		InitialStock: decimal.NewFromInt(stock),
		Unit:         "trays",
		MarketRate:   decimal.NewFromInt(rate),
		Date:         date,
	})
	suite.Require().NoError(err)
}

func (suite *LedgerScenarioTestSuite) TestPaidSaleUpdatesSummaryAndStock() {
	ctx := context.Background()
	suite.intake("Tomatoes", 100, 20, "2024-01-01")

	_, err := suite.svc.Sales.RecordSale(ctx, domain.SaleInput{
		VendorName: "A", Commodity: "Tomatoes", Unit: "trays",
		Quantity: decimal.NewFromInt(10), RatePerUnit: decimal.NewFromInt(20),
		PaymentMethod: domain.Cash, PaymentStatus: domain.Paid,
	})
	suite.Require().NoError(err)

	summary, err := suite.svc.Summary.TodaysSummary(ctx)
	suite.Require().NoError(err)
	suite.Equal("2024-01-01", summary.Date)
	suite.True(summary.TotalQuantitySold.Equal(decimal.NewFromInt(10)))
	suite.True(summary.TotalMoneyEarned.Equal(decimal.NewFromInt(200)))
	suite.True(summary.PendingAmount.IsZero())
	suite.True(summary.CollectionRate.Equal(decimal.NewFromInt(100)))
	suite.True(summary.RemainingToTarget.Equal(decimal.NewFromInt(40)))
	suite.Equal(1, summary.TotalTransactions)
	suite.Require().Len(summary.Inventory, 1)
	suite.True(summary.Inventory[0].CurrentStock.Equal(decimal.NewFromInt(90)))
	suite.True(summary.TotalInventoryValue.Equal(decimal.NewFromInt(1800)))
}

func (suite *LedgerScenarioTestSuite) TestPendingSaleThenPayment() {
	ctx := context.Background()
	_, err := suite.svc.Sales.RecordSale(ctx, domain.SaleInput{
		VendorName: "B", Commodity: "Tomatoes", Unit: "trays",
		Quantity: decimal.NewFromInt(5), RatePerUnit: decimal.NewFromInt(25),
		PaymentMethod: domain.Credit, PaymentStatus: domain.Pending,
	})
	suite.Require().NoError(err)

	outstanding, err := suite.svc.Payments.ListOutstanding(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(outstanding, 1)
	suite.Equal("B", outstanding[0].VendorName)
	suite.True(outstanding[0].TotalDueAmount.Equal(decimal.NewFromInt(125)))

	updated, err := suite.svc.Payments.RecordPaymentReceived(ctx, "B", decimal.NewFromInt(125))
	suite.Require().NoError(err)
	suite.True(updated.TotalDueAmount.IsZero())

	outstanding, err = suite.svc.Payments.ListOutstanding(ctx)
	suite.Require().NoError(err)
	suite.Empty(outstanding)
}

func (suite *LedgerScenarioTestSuite) TestRecordThenDeleteRestoresLedgers() {
	ctx := context.Background()
	suite.intake("Tomatoes", 100, 20, "2024-01-01")
	suite.Require().NoError(suite.svc.Payments.ApplyCharge(ctx, "D", decimal.NewFromInt(40), "2023-12-31"))

	id, err := suite.svc.Sales.RecordSale(ctx, domain.SaleInput{
		VendorName: "D", Commodity: "Tomatoes", Unit: "trays",
		Quantity: decimal.RequireFromString("12.5"), RatePerUnit: decimal.NewFromInt(8),
		PaymentMethod: domain.Credit, PaymentStatus: domain.Pending,
	})
	suite.Require().NoError(err)

	balance, err := suite.svc.Payments.GetVendorBalance(ctx, "D")
	suite.Require().NoError(err)
	suite.True(balance.TotalDueAmount.Equal(decimal.NewFromInt(140)))

	removed, err := suite.svc.Sales.DeleteSale(ctx, id)
	suite.Require().NoError(err)
	suite.True(removed)

	balance, err = suite.svc.Payments.GetVendorBalance(ctx, "D")
	suite.Require().NoError(err)
	suite.True(balance.TotalDueAmount.Equal(decimal.NewFromInt(40)))

	records, err := suite.svc.Inventory.GetByDate(ctx, "2024-01-01")
	suite.Require().NoError(err)
	suite.True(records[0].CurrentStock.Equal(decimal.NewFromInt(100)))

	_, err = suite.svc.Sales.GetSale(ctx, id)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerScenarioTestSuite) TestOversellGoesNegative() {
	ctx := context.Background()
	suite.intake("Tomatoes", 3, 20, "2024-01-01")

	_, err := suite.svc.Sales.RecordSale(ctx, domain.LegacySaleInput{
		VendorName: "E", Quantity: decimal.NewFromInt(5), Rate: decimal.NewFromInt(20), PaymentMethod: domain.Cash,
	})
	suite.Require().NoError(err)

	records, err := suite.svc.Inventory.GetByDate(ctx, "2024-01-01")
	suite.Require().NoError(err)
	suite.True(records[0].CurrentStock.Equal(decimal.NewFromInt(-2)))

	summary, err := suite.svc.Summary.SummaryForDate(ctx, "2024-01-01")
	suite.Require().NoError(err)
	suite.True(summary.TotalInventoryValue.IsZero())
}

func (suite *LedgerScenarioTestSuite) TestCarryOverSkipsEmptyStock() {
	ctx := context.Background()
	suite.intake("Tomatoes", 30, 20, "2023-12-31")
	suite.intake("Onions", 0, 15, "2023-12-31")

	carried, err := suite.svc.Inventory.CarryOver(ctx, "2023-12-31", "2024-01-01")
	suite.Require().NoError(err)
	suite.Require().Len(carried, 1)
	suite.Equal("Tomatoes", carried[0].Commodity)
	suite.Equal("2023-12-31", carried[0].CarryOverFromDate)
	suite.True(carried[0].InitialStock.Equal(decimal.NewFromInt(30)))
	suite.True(carried[0].CurrentStock.Equal(decimal.NewFromInt(30)))
	suite.True(carried[0].MarketRate.Equal(decimal.NewFromInt(20)))

	records, err := suite.svc.Inventory.GetByDate(ctx, "2024-01-01")
	suite.Require().NoError(err)
	suite.Len(records, 1)
}

func (suite *LedgerScenarioTestSuite) TestDateRangeIncludesLegacyRows() {
	ctx := context.Background()
	suite.store.InsertRawSale(models.Sale{
		VendorName: "Old Timer", TotalAmount: decimal.NewFromInt(60), PaymentMethod: "Cash",
		SaleDate: "2023-06-01", SaleTime: "07:00:00",
		TraysSold:   decimal.NewNullDecimal(decimal.NewFromInt(3)),
		RatePerTray: decimal.NewNullDecimal(decimal.NewFromInt(20)),
	})

	report, err := suite.svc.Summary.DateRangeSummary(ctx, "2023-01-01", "2023-12-31", domain.SaleFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(report.Sales, 1)
	legacy := report.Sales[0]
	suite.True(legacy.Quantity.Equal(decimal.NewFromInt(3)))
	suite.True(legacy.RatePerUnit.Equal(decimal.NewFromInt(20)))
	suite.Equal("Tomatoes", legacy.Commodity)
	suite.Equal(domain.Paid, legacy.PaymentStatus)
	suite.True(report.Totals.TotalMoneyEarned.Equal(decimal.NewFromInt(60)))

	_, err = suite.svc.Summary.DateRangeSummary(ctx, "2023-12-31", "2023-01-01", domain.SaleFilter{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerScenarioTestSuite) TestRecentSalesPaging() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := suite.svc.Sales.RecordSale(ctx, domain.LegacySaleInput{
			VendorName: "F", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(10), PaymentMethod: domain.Cash,
		})
		suite.Require().NoError(err)
	}

	first, err := suite.svc.Summary.RecentSales(ctx, 3, "")
	suite.Require().NoError(err)
	suite.Len(first.Sales, 3)
	suite.Require().NotNil(first.NextToken)

	second, err := suite.svc.Summary.RecentSales(ctx, 3, *first.NextToken)
	suite.Require().NoError(err)
	suite.Len(second.Sales, 2)
	suite.Nil(second.NextToken)
	suite.Greater(first.Sales[2].ID, second.Sales[0].ID)

	_, err = suite.svc.Summary.RecentSales(ctx, 3, "not-a-token")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerScenarioTestSuite) TestSettingsAndCatalog() {
	ctx := context.Background()
	suite.True(suite.svc.Settings.DailyTarget(ctx).Equal(decimal.NewFromInt(50)))

	suite.Require().NoError(suite.svc.Settings.SetSetting(ctx, domain.SettingDailyTarget, "75"))
	suite.True(suite.svc.Settings.DailyTarget(ctx).Equal(decimal.NewFromInt(75)))
	suite.ErrorIs(suite.svc.Settings.SetSetting(ctx, domain.SettingDailyTarget, "lots"), apperrors.ErrValidation)
	suite.ErrorIs(suite.svc.Settings.SetSetting(ctx, " ", "x"), apperrors.ErrValidation)

	value, err := suite.svc.Settings.GetSetting(ctx, "missing_key", "fallback")
	suite.Require().NoError(err)
	suite.Equal("fallback", value)

	added, err := suite.svc.Commodity.AddCommodityType(ctx, " Okra ", "KG")
	suite.Require().NoError(err)
	suite.Equal("Okra", added.Name)
	suite.Equal(domain.UnitKg, added.DefaultUnit)

	_, err = suite.svc.Commodity.AddCommodityType(ctx, "Okra", "kg")
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	_, err = suite.svc.Commodity.AddCommodityType(ctx, "Beans", "crates")
	suite.ErrorIs(err, apperrors.ErrValidation)

	types, err := suite.svc.Commodity.ListCommodityTypes(ctx)
	suite.Require().NoError(err)
	suite.Len(types, len(domain.DefaultCommodityTypes())+1)
}

func (suite *LedgerScenarioTestSuite) TestStoredDefaultsApplyToLaterRequests() {
	ctx := context.Background()
	suite.Require().NoError(suite.svc.Settings.SetSetting(ctx, domain.SettingDefaultCommodity, "Onions"))
	suite.Require().NoError(suite.svc.Settings.SetSetting(ctx, domain.SettingDefaultUnit, "sacks"))

	id, err := suite.svc.Sales.RecordSale(ctx, domain.LegacySaleInput{
		VendorName:    "Ravi",
		Quantity:      decimal.NewFromInt(4),
		Rate:          decimal.NewFromInt(300),
		PaymentMethod: "cash",
	})
	suite.Require().NoError(err)

	sale, err := suite.svc.Sales.GetSale(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Onions", sale.Commodity)
	suite.Equal("sacks", sale.Unit)

	record, err := suite.svc.Inventory.Intake(ctx, domain.IntakeInput{
		Commodity: "Potatoes", InitialStock: decimal.NewFromInt(10), Date: "2024-01-01",
	})
	suite.Require().NoError(err)
	suite.Equal("sacks", record.Unit)

	// A blank stored value falls back to the configured default.
	suite.Require().NoError(suite.svc.Settings.SetSetting(ctx, domain.SettingDefaultCommodity, "  "))
	suite.Equal(testDefaults.Commodity, suite.svc.Settings.SaleDefaults(ctx).Commodity)
}

func TestLedgerScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerScenarioTestSuite))
}
