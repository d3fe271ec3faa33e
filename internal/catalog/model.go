package catalog

import (
	"time"

	"ci-request-api/internal/form"
)

// Master-data rows keep their business ids ("SVC001", "T003", ...) as
// primary keys; they arrive from the CMDB with ids already assigned.

type Service struct {
	ID               string    `gorm:"primaryKey;size:32" json:"id"`
	Service          string    `gorm:"size:64;not null;column:service" json:"service"`
	ServiceName      string    `gorm:"size:255;not null;column:service_name" json:"serviceName"`
	SupportGroup     string    `gorm:"size:64;column:support_group" json:"supportGroup"`
	SupportGroupName string    `gorm:"size:255;column:support_group_name" json:"supportGroupName"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Service) TableName() string { return "master_services" }

func (s Service) Row() form.ServiceRow {
	return form.ServiceRow{
		ID:               s.ID,
		Service:          s.Service,
		ServiceName:      s.ServiceName,
		SupportGroup:     s.SupportGroup,
		SupportGroupName: s.SupportGroupName,
	}
}

type SupportGroup struct {
	ID               string    `gorm:"primaryKey;size:32" json:"id"`
	SupportGroup     string    `gorm:"size:64;not null;column:support_group" json:"supportGroup"`
	SupportGroupName string    `gorm:"size:255;not null;column:support_group_name" json:"supportGroupName"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (SupportGroup) TableName() string { return "master_support_groups" }

func (g SupportGroup) Row() form.SupportGroupRow {
	return form.SupportGroupRow{ID: g.ID, SupportGroup: g.SupportGroup, SupportGroupName: g.SupportGroupName}
}

type CIType struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Code      string    `gorm:"size:32;not null" json:"code"`
	TypeName  string    `gorm:"size:255;not null;column:type_name" json:"typeName"`
	Category  string    `gorm:"size:64;not null" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CIType) TableName() string { return "master_types" }

func (t CIType) Row() form.TypeRow {
	return form.TypeRow{ID: t.ID, Code: t.Code, TypeName: t.TypeName, Category: t.Category}
}

type CIFunction struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Code         string    `gorm:"size:32;not null" json:"code"`
	FunctionName string    `gorm:"size:255;not null;column:function_name" json:"functionName"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (CIFunction) TableName() string { return "master_functions" }

func (f CIFunction) Row() form.FunctionRow {
	return form.FunctionRow{ID: f.ID, Code: f.Code, FunctionName: f.FunctionName}
}

type Brand struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Code      string    `gorm:"size:32;not null" json:"code"`
	BrandName string    `gorm:"size:255;not null;column:brand_name" json:"brandName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Brand) TableName() string { return "master_brands" }

func (b Brand) Row() form.BrandRow {
	return form.BrandRow{ID: b.ID, Code: b.Code, BrandName: b.BrandName}
}

type Location struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Code         string    `gorm:"size:32;not null" json:"code"`
	LocationName string    `gorm:"size:255;not null;column:location_name" json:"locationName"`
	CustomerName string    `gorm:"size:255;column:customer_name" json:"customerName"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Location) TableName() string { return "master_locations" }

func (l Location) Row() form.LocationRow {
	return form.LocationRow{ID: l.ID, Code: l.Code, LocationName: l.LocationName, CustomerName: l.CustomerName}
}

type Customer struct {
	ID           string    `gorm:"primaryKey;size:32" json:"id"`
	Code         string    `gorm:"size:32;not null" json:"code"`
	CustomerName string    `gorm:"size:255;not null;column:customer_name" json:"customerName"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Customer) TableName() string { return "master_customers" }

func (c Customer) Row() form.CustomerRow {
	return form.CustomerRow{ID: c.ID, Code: c.Code, CustomerName: c.CustomerName}
}

type System struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Code      string    `gorm:"size:64;not null" json:"code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ServiceID string    `gorm:"size:32;not null;index;column:service_id" json:"serviceId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (System) TableName() string { return "master_systems" }

func (s System) Row() form.SystemRow {
	return form.SystemRow{ID: s.ID, Code: s.Code, Name: s.Name, ServiceID: s.ServiceID}
}

type Application struct {
	ID              string    `gorm:"primaryKey;size:32" json:"id"`
	Code            string    `gorm:"size:64;not null" json:"code"`
	ApplicationName string    `gorm:"size:255;not null;column:application_name" json:"applicationName"`
	SystemID        string    `gorm:"size:32;not null;index;column:system_id" json:"systemId"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Application) TableName() string { return "master_applications" }

func (a Application) Row() form.ApplicationRow {
	return form.ApplicationRow{ID: a.ID, Code: a.Code, ApplicationName: a.ApplicationName, SystemID: a.SystemID}
}

type Project struct {
	ID                string    `gorm:"primaryKey;size:32" json:"id"`
	ProjectSaleNumber string    `gorm:"size:64;column:project_sale_number" json:"projectSaleNumber"`
	ProjectName       string    `gorm:"size:255;not null;column:project_name" json:"projectName"`
	PONumberGosoft    string    `gorm:"size:64;column:po_number_gosoft" json:"poNumberGosoft"`
	PONumberCustomer  string    `gorm:"size:64;column:po_number_customer" json:"poNumberCustomer"`
	Supplier          string    `gorm:"size:255" json:"supplier"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "master_projects" }

func (p Project) Row() form.ProjectRow {
	return form.ProjectRow{
		ID:                p.ID,
		ProjectSaleNumber: p.ProjectSaleNumber,
		ProjectName:       p.ProjectName,
		PONumberGosoft:    p.PONumberGosoft,
		PONumberCustomer:  p.PONumberCustomer,
		Supplier:          p.Supplier,
	}
}

type Supplier struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	Code      string    `gorm:"size:32;not null" json:"code"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string { return "master_suppliers" }

func (s Supplier) Row() form.SupplierRow {
	return form.SupplierRow{ID: s.ID, Code: s.Code, Name: s.Name}
}

type SRRelease struct {
	ID             string    `gorm:"primaryKey;size:32" json:"id"`
	ServiceName    string    `gorm:"size:255;not null;column:service_name" json:"serviceName"`
	DocumentNumber string    `gorm:"size:64;not null;column:document_number" json:"documentNumber"`
	Status         string    `gorm:"size:32;not null" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (SRRelease) TableName() string { return "master_sr_releases" }

func (r SRRelease) Row() form.SRReleaseRow {
	return form.SRReleaseRow{ID: r.ID, ServiceName: r.ServiceName, DocumentNumber: r.DocumentNumber, Status: r.Status}
}

// ConfigurationItem is an existing CMDB CI, selectable as a parent of
// the requested one.
type ConfigurationItem struct {
	ID        string    `gorm:"primaryKey;size:32" json:"id"`
	CIName    string    `gorm:"size:255;not null;column:ci_name" json:"ciName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ConfigurationItem) TableName() string { return "cmdb_cis" }

func (ci ConfigurationItem) Ref() form.CIRef {
	return form.CIRef{ID: ci.ID, CIName: ci.CIName}
}
