package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&Service{}, &SupportGroup{}, &CIType{}, &CIFunction{}, &Brand{},
		&Location{}, &Customer{}, &System{}, &Application{}, &Project{},
		&Supplier{}, &SRRelease{}, &ConfigurationItem{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func seededTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := newTestDB(t)
	if err := Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestCatalogService_SearchBrands_Empty(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	items, pages, err := svc.SearchBrands("", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 rows, got %d: %#v", len(items), items)
	}
	if pages != 1 {
		t.Fatalf("expected 1 page even with no rows, got %d", pages)
	}
}

func TestCatalogService_SearchServices_Pagination(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	page1, pages, err := svc.SearchServices("", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	// 12 seeded services, 5 per page
	if pages != 3 {
		t.Fatalf("expected 3 pages, got %d", pages)
	}
	if len(page1) != PageSize {
		t.Fatalf("expected %d rows on page 1, got %d", PageSize, len(page1))
	}
	if page1[0].ID != "SVC001" {
		t.Fatalf("expected SVC001 first, got %q", page1[0].ID)
	}

	page3, _, err := svc.SearchServices("", 3)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(page3) != 2 {
		t.Fatalf("expected 2 rows on page 3, got %d", len(page3))
	}
	if page3[1].ID != "SVC012" {
		t.Fatalf("expected SVC012 last, got %q", page3[1].ID)
	}
}

func TestCatalogService_SearchServices_CaseInsensitive(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	items, pages, err := svc.SearchServices("DATABASE", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 row, got %d: %#v", len(items), items)
	}
	if items[0].ServiceName != "Database Management" {
		t.Fatalf("unexpected match: %#v", items[0])
	}
	if pages != 1 {
		t.Fatalf("expected 1 page, got %d", pages)
	}
}

func TestCatalogService_SearchLocations_MatchesEitherColumn(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	// "cloud" hits location name on L003 and customer name on none else
	items, _, err := svc.SearchLocations("cloud", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 1 || items[0].ID != "L003" {
		t.Fatalf("expected only L003, got %#v", items)
	}

	items, _, err = svc.SearchLocations("internal", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 rows matched on customer name, got %d", len(items))
	}
}

func TestCatalogService_SearchSystems_FiltersByService(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	items, pages, err := svc.SearchSystems("SVC003", "", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 database systems, got %d: %#v", len(items), items)
	}
	for _, s := range items {
		if s.ServiceID != "SVC003" {
			t.Fatalf("row %q leaked from service %q", s.ID, s.ServiceID)
		}
	}
	if pages != 1 {
		t.Fatalf("expected 1 page, got %d", pages)
	}
}

func TestCatalogService_SearchSystems_SearchStaysInsideParent(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	// "infra" matches SVC002 systems by code, but we ask under SVC001
	items, _, err := svc.SearchSystems("SVC001", "infra", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no rows outside parent, got %#v", items)
	}
}

func TestCatalogService_SearchApplications_FiltersBySystem(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	items, _, err := svc.SearchApplications("SYS001", "", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 ERP applications, got %d: %#v", len(items), items)
	}
}

func TestCatalogService_SearchConfigurationItems_ExcludesOwnCI(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	items, pages, err := svc.SearchConfigurationItems("CI-005", "", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if pages != 4 {
		t.Fatalf("expected 4 pages of 19 rows, got %d", pages)
	}
	for page := 1; page <= pages; page++ {
		rows, _, err := svc.SearchConfigurationItems("CI-005", "", page)
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		for _, ci := range rows {
			if ci.ID == "CI-005" {
				t.Fatalf("excluded CI surfaced on page %d", page)
			}
		}
	}
	if len(items) != PageSize {
		t.Fatalf("expected a full first page, got %d", len(items))
	}
}

func TestCatalogService_SearchConfigurationItems_SearchByIDOrName(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	items, _, err := svc.SearchConfigurationItems("", "ci-013", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 1 || items[0].CIName != "Web Server Apache" {
		t.Fatalf("expected id match CI-013, got %#v", items)
	}

	items, _, err = svc.SearchConfigurationItems("", "gateway", 1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	// Payment Gateway Service, API Gateway, VPN Gateway
	if len(items) != 3 {
		t.Fatalf("expected 3 name matches, got %d: %#v", len(items), items)
	}
}

func TestCatalogService_PageOutOfRange_ClampsToFirst(t *testing.T) {
	db := seededTestDB(t)
	svc := NewCatalogService(db)

	items, _, err := svc.SearchBrands("", 0)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(items) != 5 || items[0].ID != "B001" {
		t.Fatalf("expected page 1 content for page 0, got %#v", items)
	}
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := seededTestDB(t)

	if err := Seed(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&Service{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 12 {
		t.Fatalf("expected 12 services after reseed, got %d", count)
	}
}
