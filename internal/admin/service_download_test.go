package admin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"ci-request-api/internal/form"
)

func Test_collectAllRows_PaginatesAndDedupes(t *testing.T) {
	as := &AdminService{}

	calls := 0
	as.searchHook = func(req AdminSearchRequest) (*AdminSearchResponse, error) {
		calls++
		if req.PageSize != 200 {
			t.Fatalf("export should page with 200, got %d", req.PageSize)
		}
		if req.Page == 1 {
			return &AdminSearchResponse{
				Message: "success", Page: 1, PageSize: 200, TotalPages: 2, TotalRows: 3,
				Data: []AdminRequestRow{
					{ID: 2, RequestNo: "REQ-2"},
					{ID: 1, RequestNo: "REQ-1"},
				},
			}, nil
		}
		return &AdminSearchResponse{
			Message: "success", Page: 2, PageSize: 200, TotalPages: 2, TotalRows: 3,
			Data: []AdminRequestRow{
				{ID: 2, RequestNo: "REQ-2"}, // dup
				{ID: 3, RequestNo: "REQ-3"},
			},
		}, nil
	}

	rows, err := as.collectAllRows(AdminSearchRequest{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 pages, got %d", calls)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 unique rows, got %d", len(rows))
	}
}

func Test_ExportRequests_NoMatches_CSV(t *testing.T) {
	as := &AdminService{}
	as.searchHook = func(req AdminSearchRequest) (*AdminSearchResponse, error) {
		return &AdminSearchResponse{Message: "success", Page: 1, PageSize: 200, TotalPages: 1}, nil
	}

	ct, name, out, err := as.ExportRequests(AdminSearchRequest{}, "csv")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(ct, "text/csv") || name != "software_requests.csv" {
		t.Fatalf("unexpected ct/name: %q %q", ct, name)
	}
	s := string(out)
	if !strings.Contains(s, "request_no") || !strings.Contains(s, "service_name") {
		t.Fatalf("unexpected csv: %s", s)
	}
}

func Test_ExportRequests_XLSX(t *testing.T) {
	as := &AdminService{}
	as.searchHook = func(req AdminSearchRequest) (*AdminSearchResponse, error) {
		return &AdminSearchResponse{
			Message: "success", Page: 1, PageSize: 200, TotalPages: 1, TotalRows: 2,
			Data: []AdminRequestRow{
				{ID: 2, RequestNo: "-", CIID: "CI-20260310-002", CIName: "Billing Portal", Status: form.StatusDraft},
				{ID: 1, RequestNo: "REQ-1", CIID: "CI-1", CIName: "Payment Service", Status: "Submitted"},
			},
		}, nil
	}

	ct, name, out, err := as.ExportRequests(AdminSearchRequest{}, "excel")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(ct, "spreadsheetml") || name != "software_requests.xlsx" {
		t.Fatalf("unexpected ct/name: %q %q", ct, name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("xlsx open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Requests" {
		t.Fatalf("unexpected sheets: %#v", sheets)
	}

	a1, err := f.GetCellValue("Requests", "A1")
	if err != nil || a1 != "request_no" {
		t.Fatalf("unexpected header cell: %q err=%v", a1, err)
	}
	a2, _ := f.GetCellValue("Requests", "A2")
	if a2 != "-" {
		t.Fatalf("unexpected first data cell: %q", a2)
	}
	c3, _ := f.GetCellValue("Requests", "C3")
	if c3 != "Payment Service" {
		t.Fatalf("unexpected ci_name cell: %q", c3)
	}
}

func Test_ExportRequests_UnknownFormat_FallsBackToXLSX(t *testing.T) {
	as := &AdminService{}
	as.searchHook = func(req AdminSearchRequest) (*AdminSearchResponse, error) {
		return &AdminSearchResponse{Message: "success", Page: 1, PageSize: 200, TotalPages: 1}, nil
	}

	_, name, _, err := as.ExportRequests(AdminSearchRequest{}, "pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if name != "software_requests.xlsx" {
		t.Fatalf("unexpected name: %q", name)
	}
}
