package admin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockAdminService struct {
	lastSearch AdminSearchRequest
	lastFormat string
	searchResp *AdminSearchResponse
	exportData []byte
	err        error
}

func (m *mockAdminService) SearchRequests(req AdminSearchRequest) (*AdminSearchResponse, error) {
	m.lastSearch = req
	if m.err != nil {
		return nil, m.err
	}
	return m.searchResp, nil
}

func (m *mockAdminService) ExportRequests(req AdminSearchRequest, format string) (string, string, []byte, error) {
	m.lastSearch = req
	m.lastFormat = format
	if m.err != nil {
		return "", "", nil, m.err
	}
	return "text/csv; charset=utf-8", "software_requests.csv", m.exportData, nil
}

func setupAdminRouter(svc AdminServiceAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, svc, func(c *gin.Context) { c.Next() })
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchRequests_DefaultsPaging(t *testing.T) {
	svc := &mockAdminService{searchResp: &AdminSearchResponse{Message: "success", Page: 1, PageSize: 20, TotalPages: 1}}
	r := setupAdminRouter(svc)

	w := postJSON(t, r, "/admin/requests", `{"page": -3, "page_size": 9999}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if svc.lastSearch.Page != 1 || svc.lastSearch.PageSize != 20 {
		t.Fatalf("paging not defaulted: %+v", svc.lastSearch)
	}
}

func TestSearchRequests_BadJSON(t *testing.T) {
	svc := &mockAdminService{}
	r := setupAdminRouter(svc)

	w := postJSON(t, r, "/admin/requests", `{"page":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestSearchRequests_ServiceError(t *testing.T) {
	svc := &mockAdminService{err: errors.New("db down")}
	r := setupAdminRouter(svc)

	w := postJSON(t, r, "/admin/requests", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "db down" {
		t.Fatalf("unexpected error body: %#v", body)
	}
}

func TestExportRequests_SetsAttachmentHeaders(t *testing.T) {
	svc := &mockAdminService{exportData: []byte("request_no\n")}
	r := setupAdminRouter(svc)

	w := postJSON(t, r, "/admin/requests/export", `{"status": "Submitted", "format": " CSV "}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if svc.lastFormat != "csv" {
		t.Fatalf("format not normalized: %q", svc.lastFormat)
	}
	if svc.lastSearch.Status != "Submitted" {
		t.Fatalf("filters not forwarded: %+v", svc.lastSearch)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `filename="software_requests.csv"`) {
		t.Fatalf("unexpected disposition: %q", cd)
	}
	if got := w.Header().Get("Content-Type"); !strings.Contains(got, "text/csv") {
		t.Fatalf("unexpected content type: %q", got)
	}
}

func TestExportRequests_DefaultFormatIsExcel(t *testing.T) {
	svc := &mockAdminService{}
	r := setupAdminRouter(svc)

	w := postJSON(t, r, "/admin/requests/export", `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.lastFormat != "excel" {
		t.Fatalf("default format = %q", svc.lastFormat)
	}
}
