package memory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/SscSPs/produce_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/produce_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/produce_ledger/internal/models"
)

type inventoryKey struct {
	commodity string
	date      string
}

// Store is an in-process implementation of every ledger table. It backs the
// service in dev mode (no PGSQL_URL) and the service-level tests.
type Store struct {
	mu       sync.RWMutex
	defaults domain.SaleDefaults
	seed     domain.SeedData
	now      func() time.Time

	nextSaleID      int64
	nextInventoryID int64
	nextPaymentID   int64
	nextSettingID   int64
	nextCommodityID int64

	sales       map[int64]models.Sale
	inventory   map[inventoryKey]models.Inventory
	payments    map[string]models.PendingPayment
	settings    map[string]models.Setting
	commodities map[string]models.VegetableType
}

// NewStore creates an empty store. Call Initialize to write the seed data.
func NewStore(defaults domain.SaleDefaults, seed domain.SeedData) *Store {
	return &Store{
		defaults:    defaults,
		seed:        seed,
		now:         time.Now,
		sales:       map[int64]models.Sale{},
		inventory:   map[inventoryKey]models.Inventory{},
		payments:    map[string]models.PendingPayment{},
		settings:    map[string]models.Setting{},
		commodities: map[string]models.VegetableType{},
	}
}

var _ portsrepo.SchemaStore = (*Store)(nil)

// Initialize seeds default settings and commodity types that are not yet present.
func (s *Store) Initialize(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, value := range s.seed.Settings {
		if _, ok := s.settings[key]; ok {
			continue
		}
		s.nextSettingID++
		s.settings[key] = models.Setting{ID: s.nextSettingID, Key: key, Value: value, UpdatedAt: now}
	}
	for _, c := range s.seed.Commodities {
		if _, ok := s.commodities[c.Name]; ok {
			continue
		}
		s.nextCommodityID++
		s.commodities[c.Name] = models.VegetableType{
			ID:          s.nextCommodityID,
			Name:        c.Name,
			DefaultUnit: c.DefaultUnit,
			IsActive:    c.IsActive,
			CreatedAt:   now,
		}
	}
	log.Println("[memory-store] initialized; data is not persisted across restarts")
	return nil
}

// Close is a no-op; the maps are released with the process.
func (s *Store) Close() {}

// InsertRawSale stores a sale row exactly as given and returns its id. It is
// used to load rows written by older versions of the app, which may only
// carry the legacy trays_sold/rate_per_tray columns.
func (s *Store) InsertRawSale(row models.Sale) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSaleID++
	row.ID = s.nextSaleID
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}
	s.sales[row.ID] = row
	return row.ID
}

// Provider exposes the store through the repository ports.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Schema:        s,
		SaleRepo:      &saleRepository{store: s},
		InventoryRepo: &inventoryRepository{store: s},
		PaymentRepo:   &paymentRepository{store: s},
		SettingRepo:   &settingRepository{store: s},
		CommodityRepo: &commodityRepository{store: s},
	}
}
