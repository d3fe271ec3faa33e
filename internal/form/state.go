package form

import (
	"fmt"
	"strconv"
	"time"
)

// Request status values; advanced by the intake workflow, never by the
// form itself.
const (
	StatusDraft    = "Draft"
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// CI lifecycle status values.
const (
	CIStatusCheckIn  = "Check In"
	CIStatusCheckOut = "Check Out"
	CIStatusActive   = "Active"
	CIStatusInactive = "Inactive"
)

const (
	MaxCINameLen   = 250
	MaxRemarkLen   = 500
	MaxPONumberLen = 20
)

// FormState is the canonical in-memory shape of one change request. It
// is mutated only through SetField, SelectFromCatalog, ClearSelection
// and the sub-list editors, which keep every selection's id and display
// columns in lockstep. The JSON tags define the persisted form_data
// layout.
type FormState struct {
	RequestID     int    `json:"requestId,omitempty"`
	CIID          string `json:"ciId"`
	CreatedDate   string `json:"createdDate"`
	CreatedBy     string `json:"createdBy"`
	RequestStatus string `json:"requestStatus"`
	CIStatus      string `json:"ciStatus"`

	ReasonRequest string `json:"reasonRequest"`
	CIVersion     string `json:"ciVersion"`
	CIName        string `json:"ciName"`

	ServiceID          string `json:"serviceId"`
	ServiceName        string `json:"serviceName"`
	SupportGroupID     string `json:"supportGroupId"`
	SupportGroupName   string `json:"supportGroupName"`
	TypeID             string `json:"typeId"`
	TypeName           string `json:"typeName"`
	Category           string `json:"category"`
	FunctionID         string `json:"functionId"`
	FunctionName       string `json:"functionName"`
	BrandID            string `json:"brandId"`
	BrandName          string `json:"brandName"`
	LocationID         string `json:"locationId"`
	LocationName       string `json:"locationName"`
	CustomerID         string `json:"customerId"`
	CustomerName       string `json:"customerName"`
	SystemID           string `json:"systemId"`
	SystemCode         string `json:"systemCode"`
	SystemName         string `json:"systemName"`
	ApplicationID      string `json:"applicationId"`
	ApplicationCode    string `json:"applicationCode"`
	ApplicationName    string `json:"applicationName"`
	SupplierID         string `json:"supplierId"`
	SupplierName       string `json:"supplierName"`
	ExtendSupplierID   string `json:"extendSupplierId"`
	ExtendSupplierName string `json:"extendSupplierName"`
	ProjectID          string `json:"projectId"`
	ProjectName        string `json:"projectName"`
	ProjectSaleNumber  string `json:"projectSaleNumber"`
	PONumberGosoft     string `json:"poNumberGosoft"`
	PONumberCustomer   string `json:"poNumberCustomer"`
	ProjectSupplier    string `json:"projectSupplier"`
	SRReleaseID        string `json:"srReleaseId"`
	SRServiceName      string `json:"srServiceName"`
	SRDocumentNumber   string `json:"srDocumentNumber"`

	Environment    string `json:"environment"`
	UserGroup      string `json:"userGroup"`
	SystemLogPath  string `json:"systemLogPath"`
	ContractNo     string `json:"contractNo"`
	RepositoryURL  string `json:"repositoryUrl"`
	ApplicationURL string `json:"applicationUrl"`
	Remark         string `json:"remark"`
	PONumber       string `json:"poNumber"`
	MAPONumber     string `json:"maPoNumber"`

	InstallReleaseDate string `json:"installReleaseDate"`
	BuyDate            string `json:"buyDate"`
	WarrantyStartDate  string `json:"warrantyStartDate"`
	WarrantyEndDate    string `json:"warrantyEndDate"`
	MAStartDate        string `json:"maStartDate"`
	MAEndDate          string `json:"maEndDate"`
	DecommissionDate   string `json:"decommissionDate"`

	NeedContinueMA  string `json:"needContinueMA"`
	PendingContinue string `json:"pendingContinue"`
	MAType          string `json:"maType"`

	ParentCIs   []ParentCIRelation `json:"parentCis"`
	AttachURLs  []AttachedURL      `json:"attachUrls"`
	AttachFiles []AttachedFile     `json:"attachFiles"`

	// Errors holds the most recent validation result. Cleared per field
	// as the user edits; never serialized.
	Errors map[string]string `json:"-"`
}

// GenerateCIID builds a client-side CI id from the trailing digits of
// the clock. Nanosecond input so two forms created back to back still
// get distinct ids.
func GenerateCIID() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return "CI-" + ts
}

// NewFormState builds a fresh form with a generated ciId and defaults.
func NewFormState(createdBy string) *FormState {
	return &FormState{
		CIID:           GenerateCIID(),
		CreatedDate:    time.Now().Format("2006-01-02"),
		CreatedBy:      createdBy,
		RequestStatus:  StatusDraft,
		CIStatus:       CIStatusCheckIn,
		NeedContinueMA: "No",
		Errors:         map[string]string{},
	}
}

// fieldLimits caps the fields that truncate at entry time.
var fieldLimits = map[string]int{
	"ciName":     MaxCINameLen,
	"remark":     MaxRemarkLen,
	"poNumber":   MaxPONumberLen,
	"maPoNumber": MaxPONumberLen,
}

// freeFields maps a settable field name to its target. Selection ids
// and display columns are deliberately absent: those move only through
// SelectFromCatalog and ClearSelection.
func (f *FormState) freeFields() map[string]*string {
	return map[string]*string{
		"reasonRequest":      &f.ReasonRequest,
		"ciVersion":          &f.CIVersion,
		"ciName":             &f.CIName,
		"environment":        &f.Environment,
		"userGroup":          &f.UserGroup,
		"systemLogPath":      &f.SystemLogPath,
		"contractNo":         &f.ContractNo,
		"repositoryUrl":      &f.RepositoryURL,
		"applicationUrl":     &f.ApplicationURL,
		"remark":             &f.Remark,
		"poNumber":           &f.PONumber,
		"maPoNumber":         &f.MAPONumber,
		"installReleaseDate": &f.InstallReleaseDate,
		"buyDate":            &f.BuyDate,
		"warrantyStartDate":  &f.WarrantyStartDate,
		"warrantyEndDate":    &f.WarrantyEndDate,
		"maStartDate":        &f.MAStartDate,
		"maEndDate":          &f.MAEndDate,
		"decommissionDate":   &f.DecommissionDate,
		"needContinueMA":     &f.NeedContinueMA,
		"pendingContinue":    &f.PendingContinue,
		"maType":             &f.MAType,
	}
}

// SetField writes a free-form, date or enumerated field. Values over a
// field's ceiling are truncated here, at entry, never later. A pending
// validation error on the same field is dropped so the user sees it
// disappear as they type.
func (f *FormState) SetField(name, value string) error {
	target, ok := f.freeFields()[name]
	if !ok {
		return fmt.Errorf("unknown form field %q", name)
	}

	if limit, capped := fieldLimits[name]; capped {
		if r := []rune(value); len(r) > limit {
			value = string(r[:limit])
		}
	}

	*target = value
	if f.Errors != nil {
		delete(f.Errors, name)
	}
	return nil
}

// SelectFromCatalog applies a confirmed selector choice to the form,
// including the group's side effects: a service copies its support
// group name, activates the CI and invalidates system and application;
// a type carries its category; a location carries its customer; a
// system invalidates the application; a project carries its sale and
// PO numbers.
func (f *FormState) SelectFromCatalog(group FieldGroup, row CatalogRow) error {
	if !rowMatchesGroup(group, row) {
		return fmt.Errorf("row %T does not belong to field group %q", row, group)
	}

	switch r := row.(type) {
	case ServiceRow:
		f.ServiceID = r.ID
		f.ServiceName = r.ServiceName
		f.SupportGroupName = r.SupportGroupName
		f.CIStatus = CIStatusActive
		f.clearSystem()
		f.clearApplication()
	case SupportGroupRow:
		f.SupportGroupID = r.ID
		f.SupportGroupName = r.SupportGroupName
	case TypeRow:
		f.TypeID = r.ID
		f.TypeName = r.TypeName
		f.Category = r.Category
	case FunctionRow:
		f.FunctionID = r.ID
		f.FunctionName = r.FunctionName
	case BrandRow:
		f.BrandID = r.ID
		f.BrandName = r.BrandName
	case LocationRow:
		f.LocationID = r.ID
		f.LocationName = r.LocationName
		f.CustomerID = r.ID
		f.CustomerName = r.CustomerName
	case CustomerRow:
		f.CustomerID = r.ID
		f.CustomerName = r.CustomerName
	case SystemRow:
		f.SystemID = r.ID
		f.SystemCode = r.Code
		f.SystemName = r.Name
		f.clearApplication()
	case ApplicationRow:
		f.ApplicationID = r.ID
		f.ApplicationCode = r.Code
		f.ApplicationName = r.ApplicationName
	case SupplierRow:
		if group == GroupExtendSupplier {
			f.ExtendSupplierID = r.ID
			f.ExtendSupplierName = r.Name
		} else {
			f.SupplierID = r.ID
			f.SupplierName = r.Name
		}
	case ProjectRow:
		f.ProjectID = r.ID
		f.ProjectName = r.ProjectName
		f.ProjectSaleNumber = r.ProjectSaleNumber
		f.PONumberGosoft = r.PONumberGosoft
		f.PONumberCustomer = r.PONumberCustomer
		f.ProjectSupplier = r.Supplier
	case SRReleaseRow:
		f.SRReleaseID = r.ID
		f.SRServiceName = r.ServiceName
		f.SRDocumentNumber = r.DocumentNumber
	}

	if f.Errors != nil {
		delete(f.Errors, string(group))
	}
	return nil
}

// ClearSelection nulls a selection field's id together with all of its
// display columns, then cascades: clearing the service drops system
// and application, clearing the system drops the application, clearing
// the location drops the customer. CIStatus is one-way and stays put.
func (f *FormState) ClearSelection(group FieldGroup) error {
	switch group {
	case GroupService:
		f.ServiceID = ""
		f.ServiceName = ""
		f.SupportGroupName = ""
		f.clearSystem()
		f.clearApplication()
	case GroupSupportGroup:
		f.SupportGroupID = ""
		f.SupportGroupName = ""
	case GroupType:
		f.TypeID = ""
		f.TypeName = ""
		f.Category = ""
	case GroupFunction:
		f.FunctionID = ""
		f.FunctionName = ""
	case GroupBrand:
		f.BrandID = ""
		f.BrandName = ""
	case GroupLocation:
		f.LocationID = ""
		f.LocationName = ""
		f.CustomerID = ""
		f.CustomerName = ""
	case GroupCustomer:
		f.CustomerID = ""
		f.CustomerName = ""
	case GroupSystem:
		f.clearSystem()
		f.clearApplication()
	case GroupApplication:
		f.clearApplication()
	case GroupSupplier:
		f.SupplierID = ""
		f.SupplierName = ""
	case GroupExtendSupplier:
		f.ExtendSupplierID = ""
		f.ExtendSupplierName = ""
	case GroupProject:
		f.ProjectID = ""
		f.ProjectName = ""
		f.ProjectSaleNumber = ""
		f.PONumberGosoft = ""
		f.PONumberCustomer = ""
		f.ProjectSupplier = ""
	case GroupSRRelease:
		f.SRReleaseID = ""
		f.SRServiceName = ""
		f.SRDocumentNumber = ""
	default:
		return fmt.Errorf("unknown field group %q", group)
	}
	return nil
}

func (f *FormState) clearSystem() {
	f.SystemID = ""
	f.SystemCode = ""
	f.SystemName = ""
}

func (f *FormState) clearApplication() {
	f.ApplicationID = ""
	f.ApplicationCode = ""
	f.ApplicationName = ""
}

// Reset discards every field and starts over with a fresh ciId and
// created date. Used after a confirmed cancel.
func (f *FormState) Reset() {
	*f = *NewFormState(f.CreatedBy)
}
