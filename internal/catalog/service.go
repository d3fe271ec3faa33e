package catalog

import (
	"strings"

	"gorm.io/gorm"

	"ci-request-api/internal/form"
)

// PageSize matches the lookup dialogs: five rows per page everywhere.
const PageSize = form.SelectorPageSize

type CatalogServiceAPI interface {
	SearchServices(search string, page int) ([]Service, int, error)
	SearchSupportGroups(search string, page int) ([]SupportGroup, int, error)
	SearchTypes(search string, page int) ([]CIType, int, error)
	SearchFunctions(search string, page int) ([]CIFunction, int, error)
	SearchBrands(search string, page int) ([]Brand, int, error)
	SearchLocations(search string, page int) ([]Location, int, error)
	SearchCustomers(search string, page int) ([]Customer, int, error)
	SearchSystems(serviceID, search string, page int) ([]System, int, error)
	SearchApplications(systemID, search string, page int) ([]Application, int, error)
	SearchProjects(search string, page int) ([]Project, int, error)
	SearchSuppliers(search string, page int) ([]Supplier, int, error)
	SearchSRReleases(search string, page int) ([]SRRelease, int, error)
	SearchConfigurationItems(excludeCIID, search string, page int) ([]ConfigurationItem, int, error)
}

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

var _ CatalogServiceAPI = (*CatalogService)(nil)

// searchScope ORs a case-insensitive substring match over the given
// columns; blank search passes everything through.
func searchScope(search string, cols ...string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return q
		}
		pattern := "%" + strings.ToLower(search) + "%"
		clauses := make([]string, len(cols))
		args := make([]interface{}, len(cols))
		for i, col := range cols {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		return q.Where(strings.Join(clauses, " OR "), args...)
	}
}

func totalPages(count int64) int {
	if count == 0 {
		return 1
	}
	return int((count + PageSize - 1) / PageSize)
}

// paged counts the filtered rows, then fetches one page ordered by id.
// The base query is re-sessioned so the two finishers don't share one
// statement.
func paged(base *gorm.DB, page int, dst interface{}) (int, error) {
	base = base.Session(&gorm.Session{})

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return 0, err
	}

	if page < 1 {
		page = 1
	}
	err := base.Order("id ASC").
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(dst).Error
	if err != nil {
		return 0, err
	}
	return totalPages(count), nil
}

func (cs *CatalogService) SearchServices(search string, page int) ([]Service, int, error) {
	var items []Service
	pages, err := paged(cs.DB.Model(&Service{}).Scopes(searchScope(search, "service_name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchSupportGroups(search string, page int) ([]SupportGroup, int, error) {
	var items []SupportGroup
	pages, err := paged(cs.DB.Model(&SupportGroup{}).Scopes(searchScope(search, "support_group_name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchTypes(search string, page int) ([]CIType, int, error) {
	var items []CIType
	pages, err := paged(cs.DB.Model(&CIType{}).Scopes(searchScope(search, "type_name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchFunctions(search string, page int) ([]CIFunction, int, error) {
	var items []CIFunction
	pages, err := paged(cs.DB.Model(&CIFunction{}).Scopes(searchScope(search, "function_name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchBrands(search string, page int) ([]Brand, int, error) {
	var items []Brand
	pages, err := paged(cs.DB.Model(&Brand{}).Scopes(searchScope(search, "brand_name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchLocations(search string, page int) ([]Location, int, error) {
	var items []Location
	pages, err := paged(cs.DB.Model(&Location{}).Scopes(searchScope(search, "location_name", "customer_name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchCustomers(search string, page int) ([]Customer, int, error) {
	var items []Customer
	pages, err := paged(cs.DB.Model(&Customer{}).Scopes(searchScope(search, "customer_name")), page, &items)
	return items, pages, err
}

// SearchSystems only ever lists systems under one service; callers
// must resolve the service first.
func (cs *CatalogService) SearchSystems(serviceID, search string, page int) ([]System, int, error) {
	var items []System
	base := cs.DB.Model(&System{}).
		Where("service_id = ?", serviceID).
		Scopes(searchScope(search, "code", "name"))
	pages, err := paged(base, page, &items)
	return items, pages, err
}

// SearchApplications only ever lists applications under one system.
func (cs *CatalogService) SearchApplications(systemID, search string, page int) ([]Application, int, error) {
	var items []Application
	base := cs.DB.Model(&Application{}).
		Where("system_id = ?", systemID).
		Scopes(searchScope(search, "code", "application_name"))
	pages, err := paged(base, page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchProjects(search string, page int) ([]Project, int, error) {
	var items []Project
	pages, err := paged(cs.DB.Model(&Project{}).Scopes(searchScope(search, "project_name", "project_sale_number")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchSuppliers(search string, page int) ([]Supplier, int, error) {
	var items []Supplier
	pages, err := paged(cs.DB.Model(&Supplier{}).Scopes(searchScope(search, "code", "name")), page, &items)
	return items, pages, err
}

func (cs *CatalogService) SearchSRReleases(search string, page int) ([]SRRelease, int, error) {
	var items []SRRelease
	pages, err := paged(cs.DB.Model(&SRRelease{}).Scopes(searchScope(search, "service_name", "document_number")), page, &items)
	return items, pages, err
}

// SearchConfigurationItems lists parent-CI candidates. The requesting
// form's own CI is excluded here so it can never surface, whatever the
// search text says.
func (cs *CatalogService) SearchConfigurationItems(excludeCIID, search string, page int) ([]ConfigurationItem, int, error) {
	var items []ConfigurationItem
	base := cs.DB.Model(&ConfigurationItem{}).Scopes(searchScope(search, "id", "ci_name"))
	if excludeCIID != "" {
		base = base.Where("id <> ?", excludeCIID)
	}
	pages, err := paged(base, page, &items)
	return items, pages, err
}
