package pgsql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/produce_ledger/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// LedgerStoreTestSuite runs against a real database named by TEST_PGSQL_URL.
// Every test starts from empty ledger tables.
type LedgerStoreTestSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repos portsrepo.RepositoryProvider
}

var testDefaults = domain.SaleDefaults{Commodity: "Tomatoes", Unit: "trays"}

func TestLedgerStoreTestSuite(t *testing.T) {
	if os.Getenv("TEST_PGSQL_URL") == "" {
		t.Skip("TEST_PGSQL_URL not set, skipping PostgreSQL integration tests")
	}
	suite.Run(t, new(LedgerStoreTestSuite))
}

func (s *LedgerStoreTestSuite) SetupSuite() {
	url := os.Getenv("TEST_PGSQL_URL")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := database.NewPgxPool(ctx, url, true)
	s.Require().NoError(err)
	s.pool = pool
	s.repos = pgsql.NewRepositoryProvider(pool, url, testDefaults, domain.DefaultSeed(testDefaults, "50"))
	s.Require().NoError(s.repos.Schema.Initialize(ctx))
}

func (s *LedgerStoreTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *LedgerStoreTestSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE sales, inventory, pending_payments RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *LedgerStoreTestSuite) TestInitializeIsIdempotent() {
	ctx := context.Background()
	s.Require().NoError(s.repos.SettingRepo.SaveSetting(ctx, domain.SettingDailyTarget, "75"))
	s.Require().NoError(s.repos.Schema.Initialize(ctx))

	setting, err := s.repos.SettingRepo.FindSetting(ctx, domain.SettingDailyTarget)
	s.Require().NoError(err)
	s.Equal("75", setting.Value)

	s.Require().NoError(s.repos.SettingRepo.SaveSetting(ctx, domain.SettingDailyTarget, "50"))
}

func (s *LedgerStoreTestSuite) TestSaleRoundTripAndFilters() {
	ctx := context.Background()
	sale := domain.Sale{
		VendorName:    "Ravi_Traders",
		Commodity:     "Onions",
		Quantity:      decimal.RequireFromString("2.5"),
		Unit:          "sacks",
		RatePerUnit:   decimal.NewFromInt(400),
		TotalAmount:   decimal.NewFromInt(1000),
		PaymentMethod: domain.Credit,
		PaymentStatus: domain.Pending,
		DueAmount:     decimal.NewFromInt(1000),
		SaleDate:      "2024-03-01",
		SaleTime:      "09:15:00",
		CreatedAt:     time.Now().UTC(),
	}
	id, err := s.repos.SaleRepo.SaveSale(ctx, sale)
	s.Require().NoError(err)

	found, err := s.repos.SaleRepo.FindSaleByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("Onions", found.Commodity)
	s.True(found.Quantity.Equal(sale.Quantity))
	s.True(found.DueAmount.Equal(sale.DueAmount))

	// Underscore must match literally, not as a wildcard.
	sales, err := s.repos.SaleRepo.ListSales(ctx, domain.SaleFilter{VendorQuery: "i_t"})
	s.Require().NoError(err)
	s.Len(sales, 1)
	sales, err = s.repos.SaleRepo.ListSales(ctx, domain.SaleFilter{VendorQuery: "iXt"})
	s.Require().NoError(err)
	s.Empty(sales)

	removed, err := s.repos.SaleRepo.DeleteSale(ctx, id)
	s.Require().NoError(err)
	s.True(removed)
	_, err = s.repos.SaleRepo.FindSaleByID(ctx, id)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerStoreTestSuite) TestInventoryUpsertAndAdjust() {
	ctx := context.Background()
	record := domain.InventoryRecord{
		Commodity: "Tomatoes", Date: "2024-03-01", Unit: "trays",
		InitialStock: decimal.NewFromInt(100), CurrentStock: decimal.NewFromInt(100),
		MarketRate: decimal.NewFromInt(30),
	}
	first, err := s.repos.InventoryRepo.UpsertInventory(ctx, record)
	s.Require().NoError(err)

	record.InitialStock = decimal.NewFromInt(60)
	record.CurrentStock = decimal.NewFromInt(60)
	second, err := s.repos.InventoryRepo.UpsertInventory(ctx, record)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	ok, err := s.repos.InventoryRepo.AdjustCurrentStock(ctx, "Tomatoes", "2024-03-01", decimal.NewFromInt(-70))
	s.Require().NoError(err)
	s.True(ok)

	records, err := s.repos.InventoryRepo.ListInventoryByDate(ctx, "2024-03-01")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.True(records[0].CurrentStock.Equal(decimal.NewFromInt(-10)))
}

func (s *LedgerStoreTestSuite) TestPendingPaymentUpsert() {
	ctx := context.Background()
	_, err := s.repos.PaymentRepo.FindPendingPayment(ctx, "Sita")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(s.repos.PaymentRepo.SavePendingPayment(ctx, domain.PendingPayment{
		VendorName: "Sita", TotalDueAmount: decimal.NewFromInt(300), LastTransactionDate: "2024-03-01",
	}))
	s.Require().NoError(s.repos.PaymentRepo.SavePendingPayment(ctx, domain.PendingPayment{
		VendorName: "Sita", TotalDueAmount: decimal.NewFromInt(120), LastTransactionDate: "2024-03-02",
	}))

	outstanding, err := s.repos.PaymentRepo.ListOutstandingPayments(ctx)
	s.Require().NoError(err)
	s.Require().Len(outstanding, 1)
	s.True(outstanding[0].TotalDueAmount.Equal(decimal.NewFromInt(120)))
	s.Equal("2024-03-02", outstanding[0].LastTransactionDate)
}

func (s *LedgerStoreTestSuite) TestAdjustPendingBalanceConcurrentCharges() {
	ctx := context.Background()
	const workers = 20

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.repos.PaymentRepo.AdjustPendingBalance(ctx, "Sita", decimal.NewFromInt(15), "2024-03-01")
			s.NoError(err)
		}()
	}
	wg.Wait()

	payment, err := s.repos.PaymentRepo.FindPendingPayment(ctx, "Sita")
	s.Require().NoError(err)
	s.True(payment.TotalDueAmount.Equal(decimal.NewFromInt(15*workers)), payment.TotalDueAmount.String())

	updated, prior, err := s.repos.PaymentRepo.AdjustPendingBalance(ctx, "Sita", decimal.NewFromInt(-1000), "2024-03-02")
	s.Require().NoError(err)
	s.True(prior.Equal(decimal.NewFromInt(15 * workers)))
	s.True(updated.TotalDueAmount.IsZero())
	s.Equal("2024-03-02", updated.LastTransactionDate)

	_, _, err = s.repos.PaymentRepo.AdjustPendingBalance(ctx, "Ghost", decimal.NewFromInt(-5), "2024-03-02")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

// restoreSalesTable replaces whatever sales table a test left behind with the
// one the base migration creates.
func (s *LedgerStoreTestSuite) restoreSalesTable() {
	ctx := context.Background()
	ddl, err := os.ReadFile("migrations/000001_create_ledger_tables.up.sql")
	s.Require().NoError(err)
	_, err = s.pool.Exec(ctx, `DROP TABLE IF EXISTS sales`)
	s.Require().NoError(err)
	_, err = s.pool.Exec(ctx, string(ddl))
	s.Require().NoError(err)
}

func (s *LedgerStoreTestSuite) TestInitializeUpgradesLegacySalesTable() {
	ctx := context.Background()
	defer s.restoreSalesTable()

	_, err := s.pool.Exec(ctx, `DROP TABLE sales`)
	s.Require().NoError(err)
	_, err = s.pool.Exec(ctx, `
		CREATE TABLE sales (
			id             BIGSERIAL PRIMARY KEY,
			vendor_name    TEXT    NOT NULL,
			trays_sold     INTEGER,
			rate_per_tray  INTEGER,
			total_amount   NUMERIC NOT NULL,
			payment_method TEXT    NOT NULL,
			sale_date      TEXT    NOT NULL,
			sale_time      TEXT    NOT NULL
		)`)
	s.Require().NoError(err)
	_, err = s.pool.Exec(ctx, `
		INSERT INTO sales (vendor_name, trays_sold, rate_per_tray, total_amount, payment_method, sale_date, sale_time)
		VALUES ('Old_Vendor', 12, 150, 1800, 'cash', '2023-06-01', '07:15:00')`)
	s.Require().NoError(err)

	s.Require().NoError(s.repos.Schema.Initialize(ctx))

	var (
		quantity, rate, trays, trayRate, due decimal.Decimal
		commodity, unit, status              string
	)
	row := s.pool.QueryRow(ctx, `
		SELECT quantity_sold, rate_per_unit, trays_sold, rate_per_tray, due_amount,
			vegetable_type, unit_type, payment_status
		FROM sales WHERE vendor_name = 'Old_Vendor'`)
	s.Require().NoError(row.Scan(&quantity, &rate, &trays, &trayRate, &due, &commodity, &unit, &status))
	s.True(quantity.Equal(decimal.NewFromInt(12)), quantity.String())
	s.True(rate.Equal(decimal.NewFromInt(150)), rate.String())
	s.True(trays.Equal(decimal.NewFromInt(12)))
	s.True(trayRate.Equal(decimal.NewFromInt(150)))
	s.True(due.IsZero())
	s.Equal("Tomatoes", commodity)
	s.Equal("trays", unit)
	s.Equal("paid", status)

	var trayType string
	s.Require().NoError(s.pool.QueryRow(ctx, `
		SELECT data_type FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = 'sales' AND column_name = 'trays_sold'`).Scan(&trayType))
	s.Equal("numeric", trayType)

	sales, err := s.repos.SaleRepo.ListSales(ctx, domain.SaleFilter{})
	s.Require().NoError(err)
	s.Require().Len(sales, 1)
	s.True(sales[0].Quantity.Equal(decimal.NewFromInt(12)))

	// A second run must leave the upgraded row alone, including later edits.
	_, err = s.pool.Exec(ctx, `UPDATE sales SET quantity_sold = 13 WHERE vendor_name = 'Old_Vendor'`)
	s.Require().NoError(err)
	var columnsBefore, columnsAfter int
	countColumns := `SELECT COUNT(*) FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = 'sales'`
	s.Require().NoError(s.pool.QueryRow(ctx, countColumns).Scan(&columnsBefore))

	s.Require().NoError(s.repos.Schema.Initialize(ctx))

	s.Require().NoError(s.pool.QueryRow(ctx, countColumns).Scan(&columnsAfter))
	s.Equal(columnsBefore, columnsAfter)
	var count int
	s.Require().NoError(s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&count))
	s.Equal(1, count)
	s.Require().NoError(s.pool.QueryRow(ctx, `SELECT quantity_sold, trays_sold FROM sales WHERE vendor_name = 'Old_Vendor'`).Scan(&quantity, &trays))
	s.True(quantity.Equal(decimal.NewFromInt(13)))
	s.True(trays.Equal(decimal.NewFromInt(12)))
}

func (s *LedgerStoreTestSuite) TestCommodityDuplicate() {
	_, err := s.repos.CommodityRepo.SaveCommodityType(context.Background(), domain.CommodityType{
		Name: "Tomatoes", DefaultUnit: "trays", IsActive: true,
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}
