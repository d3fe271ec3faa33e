package form

import (
	"fmt"

	"ci-request-api/internal/util"
)

// fieldOrder is the vertical order of the form; the first invalid
// field is reported against it so the caller can focus it.
var fieldOrder = []string{
	"reasonRequest",
	"ciName",
	"ciVersion",
	"service",
	"supportGroup",
	"type",
	"system",
	"application",
	"remark",
	"poNumber",
	"maPoNumber",
	"pendingContinue",
	"projectName",
	"maStartDate",
	"maEndDate",
}

// requiredFields are always mandatory. Selection fields count as set
// only when their selected id is present.
var requiredFields = []struct {
	field string
	label string
	value func(*FormState) string
}{
	{"reasonRequest", "Reason Request", func(f *FormState) string { return f.ReasonRequest }},
	{"ciName", "CI Name", func(f *FormState) string { return f.CIName }},
	{"ciVersion", "CI Version", func(f *FormState) string { return f.CIVersion }},
	{"service", "Service", func(f *FormState) string { return f.ServiceID }},
	{"supportGroup", "Support Group", func(f *FormState) string { return f.SupportGroupID }},
	{"type", "Type", func(f *FormState) string { return f.TypeID }},
	{"system", "System Name", func(f *FormState) string { return f.SystemID }},
	{"application", "Application", func(f *FormState) string { return f.ApplicationID }},
}

// Validate checks a form snapshot and returns the field-to-message
// error map plus the name of the first failing field in form order
// ("" when the map is empty). It is a pure function: running it twice
// on unchanged state yields identical results.
func Validate(f *FormState) (map[string]string, string) {
	errs := map[string]string{}

	for _, rf := range requiredFields {
		if rf.value(f) == "" {
			errs[rf.field] = rf.label + " is required"
		}
	}

	if n := len([]rune(f.CIName)); n > MaxCINameLen {
		errs["ciName"] = fmt.Sprintf("CI Name cannot exceed %d characters", MaxCINameLen)
	}
	if n := len([]rune(f.Remark)); n > MaxRemarkLen {
		errs["remark"] = fmt.Sprintf("Remark cannot exceed %d characters", MaxRemarkLen)
	}
	if n := len([]rune(f.PONumber)); n > MaxPONumberLen {
		errs["poNumber"] = fmt.Sprintf("PO Number cannot exceed %d characters", MaxPONumberLen)
	}
	if n := len([]rune(f.MAPONumber)); n > MaxPONumberLen {
		errs["maPoNumber"] = fmt.Sprintf("MA PO Number cannot exceed %d characters", MaxPONumberLen)
	}

	if f.NeedContinueMA == "Yes" {
		if f.PendingContinue == "" {
			errs["pendingContinue"] = "Pending Continue is required"
		}
		if f.ProjectName == "" {
			errs["projectName"] = "Project Name is required"
		}
		if f.MAStartDate == "" {
			errs["maStartDate"] = "MA Start Date is required"
		}
		if f.MAEndDate == "" {
			errs["maEndDate"] = "MA End Date is required"
		}

		start, startOK, startErr := util.ParseFormDate(f.MAStartDate)
		end, endOK, endErr := util.ParseFormDate(f.MAEndDate)
		if startErr != nil {
			errs["maStartDate"] = "MA Start Date is not a valid date"
		}
		if endErr != nil {
			errs["maEndDate"] = "MA End Date is not a valid date"
		}
		if startOK && endOK && !start.Before(end) {
			errs["maEndDate"] = "MA End Date must be after MA Start Date"
		}
	}

	return errs, firstInvalid(errs)
}

func firstInvalid(errs map[string]string) string {
	for _, field := range fieldOrder {
		if _, bad := errs[field]; bad {
			return field
		}
	}
	return ""
}
