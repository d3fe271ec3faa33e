package admin

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ci-request-api/internal/form"
	"ci-request-api/internal/util"
)

type AdminService struct {
	DB *gorm.DB

	// test seam for export pagination
	searchHook func(req AdminSearchRequest) (*AdminSearchResponse, error)
}

type requestScanRow struct {
	ID          uint
	RequestNo   string
	CIID        string `gorm:"column:ci_id"`
	Status      string
	FormData    datatypes.JSON `gorm:"column:form_data"`
	RequestDate time.Time
	UpdatedAt   time.Time
	Username    string
	FullName    string
}

func (as *AdminService) baseQuery(req AdminSearchRequest) (*gorm.DB, error) {
	base := as.DB.Table("software_requests sr").
		Joins("LEFT JOIN users u ON u.id = sr.user_id")

	if s := strings.TrimSpace(req.Status); s != "" {
		base = base.Where("sr.status = ?", s)
	}

	if r := strings.TrimSpace(req.Requester); r != "" {
		term := "%" + strings.ToLower(r) + "%"
		base = base.Where("(LOWER(u.username) LIKE ? OR LOWER(u.full_name) LIKE ?)", term, term)
	}

	if s := strings.TrimSpace(req.Search); s != "" {
		term := "%" + strings.ToLower(s) + "%"
		base = base.Where(
			"(LOWER(sr.request_no) LIKE ? OR LOWER(sr.ci_id) LIKE ? OR LOWER(CAST(sr.form_data AS TEXT)) LIKE ?)",
			term, term, term,
		)
	}

	start, hasStart, endEx, hasEnd, err := util.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if hasStart {
		base = base.Where("sr.request_date >= ?", start)
	}
	if hasEnd {
		base = base.Where("sr.request_date < ?", endEx)
	}

	return base, nil
}

// SearchRequests pages through the full request register, drafts and
// submitted alike, with per-status and per-service rollups.
func (as *AdminService) SearchRequests(req AdminSearchRequest) (*AdminSearchResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 200 {
		req.PageSize = 20
	}

	base, err := as.baseQuery(req)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(req.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var scanned []requestScanRow
	if err := base.Session(&gorm.Session{}).
		Select("sr.id, sr.request_no, sr.ci_id, sr.status, sr.form_data, sr.request_date, sr.updated_at, u.username AS username, u.full_name AS full_name").
		Order("sr.request_date DESC").
		Offset((req.Page - 1) * req.PageSize).
		Limit(req.PageSize).
		Scan(&scanned).Error; err != nil {
		return nil, err
	}

	data := make([]AdminRequestRow, 0, len(scanned))
	for _, row := range scanned {
		data = append(data, toRequestRow(row))
	}

	aggs, err := as.aggregates(base)
	if err != nil {
		return nil, err
	}

	return &AdminSearchResponse{
		Message:      "success",
		Page:         req.Page,
		PageSize:     req.PageSize,
		TotalPages:   totalPages,
		TotalRows:    total,
		Data:         data,
		Aggregations: aggs,
	}, nil
}

func toRequestRow(row requestScanRow) AdminRequestRow {
	out := AdminRequestRow{
		ID:          row.ID,
		RequestNo:   row.RequestNo,
		CIID:        row.CIID,
		Status:      row.Status,
		Username:    row.Username,
		FullName:    row.FullName,
		RequestDate: util.FormatTimestamp(row.RequestDate),
		UpdatedAt:   util.FormatTimestamp(row.UpdatedAt),
	}
	if out.RequestNo == "" {
		out.RequestNo = "-"
	}

	var payload form.FormState
	if err := json.Unmarshal(row.FormData, &payload); err == nil {
		out.CIName = payload.CIName
		out.CIVersion = payload.CIVersion
		out.ServiceName = payload.ServiceName
	}
	return out
}

func (as *AdminService) aggregates(base *gorm.DB) (Aggregations, error) {
	aggs := Aggregations{}

	var byStatus []AggKV
	if err := base.Session(&gorm.Session{}).
		Select("sr.status AS key, COUNT(*) AS count").
		Group("sr.status").
		Order("count DESC").
		Scan(&byStatus).Error; err != nil {
		return aggs, err
	}
	aggs.ByStatus = byStatus

	// service name lives inside the form payload, so this rollup is
	// computed here rather than in SQL
	var blobs []requestScanRow
	if err := base.Session(&gorm.Session{}).
		Select("sr.form_data").
		Scan(&blobs).Error; err != nil {
		return aggs, err
	}

	counts := map[string]int64{}
	for _, b := range blobs {
		var payload form.FormState
		name := "(none)"
		if err := json.Unmarshal(b.FormData, &payload); err == nil && payload.ServiceName != "" {
			name = payload.ServiceName
		}
		counts[name]++
	}

	byService := make([]AggKV, 0, len(counts))
	for k, v := range counts {
		byService = append(byService, AggKV{Key: k, Count: v})
	}
	sort.Slice(byService, func(i, j int) bool {
		if byService[i].Count != byService[j].Count {
			return byService[i].Count > byService[j].Count
		}
		return byService[i].Key < byService[j].Key
	})
	if len(byService) > 12 {
		byService = byService[:12]
	}
	aggs.ByService = byService

	return aggs, nil
}

// collectAllRows pages through the register so exports always cover
// every match, not just the caller's current page.
func (as *AdminService) collectAllRows(req AdminSearchRequest) ([]AdminRequestRow, error) {
	search := as.SearchRequests
	if as.searchHook != nil {
		search = as.searchHook
	}

	seen := map[uint]struct{}{}
	var out []AdminRequestRow

	page := 1
	for {
		req.Page = page
		req.PageSize = 200

		resp, err := search(req)
		if err != nil {
			return nil, err
		}

		for _, row := range resp.Data {
			if _, ok := seen[row.ID]; ok {
				continue
			}
			seen[row.ID] = struct{}{}
			out = append(out, row)
		}

		if page >= resp.TotalPages {
			break
		}
		page++
	}

	return out, nil
}

var exportHeader = []string{
	"request_no", "ci_id", "ci_name", "ci_version", "service_name",
	"status", "username", "full_name", "request_date", "updated_at",
}

func exportRecord(r AdminRequestRow) []string {
	return []string{
		r.RequestNo, r.CIID, r.CIName, r.CIVersion, r.ServiceName,
		r.Status, r.Username, r.FullName, r.RequestDate, r.UpdatedAt,
	}
}

// ExportRequests renders the filtered register as a downloadable file.
// Format is "csv" or "excel"; anything else falls back to excel.
func (as *AdminService) ExportRequests(req AdminSearchRequest, format string) (contentType, filename string, out []byte, err error) {
	rows, err := as.collectAllRows(req)
	if err != nil {
		return "", "", nil, err
	}

	if format == "csv" {
		out, err = buildCSV(rows)
		return "text/csv; charset=utf-8", "software_requests.csv", out, err
	}

	out, err = buildXLSX(rows)
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "software_requests.xlsx", out, err
}

func buildCSV(rows []AdminRequestRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(exportRecord(r)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ---- XLSX (drafts get a yellow status cell) ----

func buildXLSX(rows []AdminRequestRow) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})

	draftStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFFF00"}},
	})

	defaultSheet := f.GetSheetName(0)
	const sheet = "Requests"
	f.NewSheet(sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, 0, len(exportHeader))
	for _, h := range exportHeader {
		header = append(header, excelize.Cell{Value: h, StyleID: headerStyle})
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		rec := exportRecord(r)
		values := make([]interface{}, 0, len(rec))
		for col, v := range rec {
			if exportHeader[col] == "status" && r.Status == form.StatusDraft {
				values = append(values, excelize.Cell{Value: v, StyleID: draftStyle})
			} else {
				values = append(values, v)
			}
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, values); err != nil {
			return nil, err
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, err
	}

	if defaultSheet != "" && defaultSheet != sheet {
		f.DeleteSheet(defaultSheet)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
