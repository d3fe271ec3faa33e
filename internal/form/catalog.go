package form

// FieldGroup identifies one selection field of the request form. Every
// catalog row variant belongs to exactly one group, except SupplierRow
// which serves both the supplier and extendSupplier fields.
type FieldGroup string

const (
	GroupService        FieldGroup = "service"
	GroupSupportGroup   FieldGroup = "supportGroup"
	GroupType           FieldGroup = "type"
	GroupFunction       FieldGroup = "function"
	GroupBrand          FieldGroup = "brand"
	GroupLocation       FieldGroup = "location"
	GroupCustomer       FieldGroup = "customer"
	GroupSystem         FieldGroup = "system"
	GroupApplication    FieldGroup = "application"
	GroupSupplier       FieldGroup = "supplier"
	GroupExtendSupplier FieldGroup = "extendSupplier"
	GroupProject        FieldGroup = "project"
	GroupSRRelease      FieldGroup = "srRelease"
)

// CatalogRow is the closed set of master-data row shapes a selector can
// return. Each variant carries exactly the columns its catalog exposes,
// so a selection can never smuggle fields from another group.
type CatalogRow interface {
	RowID() string
	// SearchValues lists the columns eligible for substring search.
	SearchValues() []string
	// parentKey returns the owning parent id for dependent catalogs
	// (systems, applications) and "" for everything else. Unexported so
	// the set of variants stays closed.
	parentKey() string
}

type ServiceRow struct {
	ID               string `json:"id"`
	Service          string `json:"service"`
	ServiceName      string `json:"serviceName"`
	SupportGroup     string `json:"supportGroup"`
	SupportGroupName string `json:"supportGroupName"`
}

func (r ServiceRow) RowID() string          { return r.ID }
func (r ServiceRow) SearchValues() []string { return []string{r.ServiceName} }
func (r ServiceRow) parentKey() string      { return "" }

type SupportGroupRow struct {
	ID               string `json:"id"`
	SupportGroup     string `json:"supportGroup"`
	SupportGroupName string `json:"supportGroupName"`
}

func (r SupportGroupRow) RowID() string          { return r.ID }
func (r SupportGroupRow) SearchValues() []string { return []string{r.SupportGroupName} }
func (r SupportGroupRow) parentKey() string      { return "" }

type TypeRow struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	TypeName string `json:"typeName"`
	Category string `json:"category"`
}

func (r TypeRow) RowID() string          { return r.ID }
func (r TypeRow) SearchValues() []string { return []string{r.TypeName} }
func (r TypeRow) parentKey() string      { return "" }

type FunctionRow struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	FunctionName string `json:"functionName"`
}

func (r FunctionRow) RowID() string          { return r.ID }
func (r FunctionRow) SearchValues() []string { return []string{r.FunctionName} }
func (r FunctionRow) parentKey() string      { return "" }

type BrandRow struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	BrandName string `json:"brandName"`
}

func (r BrandRow) RowID() string          { return r.ID }
func (r BrandRow) SearchValues() []string { return []string{r.BrandName} }
func (r BrandRow) parentKey() string      { return "" }

type LocationRow struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	LocationName string `json:"locationName"`
	CustomerName string `json:"customerName"`
}

func (r LocationRow) RowID() string          { return r.ID }
func (r LocationRow) SearchValues() []string { return []string{r.LocationName, r.CustomerName} }
func (r LocationRow) parentKey() string      { return "" }

type CustomerRow struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	CustomerName string `json:"customerName"`
}

func (r CustomerRow) RowID() string          { return r.ID }
func (r CustomerRow) SearchValues() []string { return []string{r.CustomerName} }
func (r CustomerRow) parentKey() string      { return "" }

type SystemRow struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	ServiceID string `json:"serviceId"`
}

func (r SystemRow) RowID() string          { return r.ID }
func (r SystemRow) SearchValues() []string { return []string{r.Code, r.Name} }
func (r SystemRow) parentKey() string      { return r.ServiceID }

type ApplicationRow struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	ApplicationName string `json:"applicationName"`
	SystemID        string `json:"systemId"`
}

func (r ApplicationRow) RowID() string          { return r.ID }
func (r ApplicationRow) SearchValues() []string { return []string{r.Code, r.ApplicationName} }
func (r ApplicationRow) parentKey() string      { return r.SystemID }

type ProjectRow struct {
	ID                string `json:"id"`
	ProjectSaleNumber string `json:"projectSaleNumber"`
	ProjectName       string `json:"projectName"`
	PONumberGosoft    string `json:"poNumberGosoft"`
	PONumberCustomer  string `json:"poNumberCustomer"`
	Supplier          string `json:"supplier"`
}

func (r ProjectRow) RowID() string          { return r.ID }
func (r ProjectRow) SearchValues() []string { return []string{r.ProjectName, r.ProjectSaleNumber} }
func (r ProjectRow) parentKey() string      { return "" }

type SupplierRow struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r SupplierRow) RowID() string          { return r.ID }
func (r SupplierRow) SearchValues() []string { return []string{r.Code, r.Name} }
func (r SupplierRow) parentKey() string      { return "" }

type SRReleaseRow struct {
	ID             string `json:"id"`
	ServiceName    string `json:"serviceName"`
	DocumentNumber string `json:"documentNumber"`
	Status         string `json:"status"`
}

func (r SRReleaseRow) RowID() string          { return r.ID }
func (r SRReleaseRow) SearchValues() []string { return []string{r.ServiceName, r.DocumentNumber} }
func (r SRReleaseRow) parentKey() string      { return "" }

// rowMatchesGroup reports whether a row variant is acceptable for the
// given field group. Supplier rows back two groups; everything else is
// one-to-one.
func rowMatchesGroup(group FieldGroup, row CatalogRow) bool {
	switch row.(type) {
	case ServiceRow:
		return group == GroupService
	case SupportGroupRow:
		return group == GroupSupportGroup
	case TypeRow:
		return group == GroupType
	case FunctionRow:
		return group == GroupFunction
	case BrandRow:
		return group == GroupBrand
	case LocationRow:
		return group == GroupLocation
	case CustomerRow:
		return group == GroupCustomer
	case SystemRow:
		return group == GroupSystem
	case ApplicationRow:
		return group == GroupApplication
	case SupplierRow:
		return group == GroupSupplier || group == GroupExtendSupplier
	case ProjectRow:
		return group == GroupProject
	case SRReleaseRow:
		return group == GroupSRRelease
	default:
		return false
	}
}
