package logs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true, // removes BEGIN/COMMIT from expectations
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	cleanup := func() { _ = db.Close() }
	return gdb, mock, cleanup
}

func mustJSONPtr(t *testing.T, v any) *string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	s := string(b)
	return &s
}

func TestLogService_Log_Inserts(t *testing.T) {
	t.Run("metadata nil", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(), // level
				sqlmock.AnyArg(), // service
				sqlmock.AnyArg(), // user_id
				sqlmock.AnyArg(), // action
				sqlmock.AnyArg(), // message
				sqlmock.AnyArg(), // request_no
				sqlmock.AnyArg(), // related_cis
				sqlmock.AnyArg(), // metadata
				sqlmock.AnyArg(), // created_at
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := ls.Log(SystemLog{
			Level:      "info",
			Service:    "software_request",
			UserID:     ptrUint(7),
			Action:     "submit_request",
			Message:    "ok",
			RequestNo:  ptrStr("REQ-12"),
			RelatedCIs: pq.StringArray{"CI-001", "CI-002"},
		}, nil)

		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	})

	t.Run("metadata json", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		err := ls.Log(SystemLog{
			Level:      "error",
			Service:    "auth",
			Action:     "login",
			Message:    "fail",
			RelatedCIs: pq.StringArray{},
		}, map[string]any{"ip": "127.0.0.1"})

		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	})

	t.Run("metadata marshal fails (ignored)", func(t *testing.T) {
		db, mock, cleanup := newMockGorm(t)
		defer cleanup()

		ls := &LogService{DB: db}

		mock.ExpectQuery(`INSERT INTO "logs"`).
			WithArgs(
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		// json.Marshal on func fails; metadata is inserted as NULL.
		err := ls.Log(SystemLog{
			Level:   "info",
			Service: "svc",
			Action:  "act",
			Message: "msg",
		}, func() {})

		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("expectations: %v", err)
		}
	})
}

func TestLogService_GetLogs_InvalidDateRange_ReturnsError(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()
	_ = mock // no db calls expected

	ls := &LogService{DB: db}

	start := "bad-date"
	_, _, _, _, err := ls.GetLogs(LogFilterInput{
		StartDate: &start,
		Page:      1,
		PageSize:  10,
	})
	if err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestLogService_GetLogs_CountError_ReturnsError(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnError(errors.New("count failed"))

	_, _, _, _, err := ls.GetLogs(LogFilterInput{Page: 1, PageSize: 10})
	if err == nil || err.Error() != "count failed" {
		t.Fatalf("expected count failed, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestLogService_GetLogs_HappyPath_WithAggregates(t *testing.T) {
	db, mock, cleanup := newMockGorm(t)
	defer cleanup()

	ls := &LogService{DB: db}

	// 1) total count
	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// 2) paged rows scan
	cols := []string{
		"id", "level", "service", "user_id", "action", "message",
		"request_no", "related_cis", "metadata", "created_at",
		"username", "full_name",
	}
	now := time.Now()

	mock.ExpectQuery(`SELECT logs\.\*, a\.username as username, a\.full_name as full_name`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(
				1, "info", "software_request", sql.NullInt64{Int64: 10, Valid: true}, "submit_request", "ok",
				"REQ-1", []byte(`{CI-001,CI-002}`), mustJSONPtr(t, map[string]any{"k": "v"}), now,
				"jdoe", "John Doe",
			).
			AddRow(
				2, "error", "auth", sql.NullInt64{Valid: false}, "login", "fail",
				nil, []byte(`{}`), nil, now.Add(-time.Minute),
				"", "",
			))

	// 3) aggregates: ByAction
	mock.ExpectQuery(`SELECT x\.action AS label, COUNT\(\*\) AS count`).
		WillReturnRows(sqlmock.NewRows([]string{"label", "count"}).
			AddRow("submit_request", 2).
			AddRow("login", 1))

	// 4) aggregates: ByPerson
	mock.ExpectQuery(`CASE\s+WHEN\s+\(COALESCE\(x\.username,''\) = '' AND COALESCE\(x\.full_name,''\) = ''\)`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "full_name", "label", "count"}).
			AddRow(sql.NullInt64{Int64: 10, Valid: true}, "jdoe", "John Doe", "John Doe", 2).
			AddRow(sql.NullInt64{Valid: false}, "", "", "Unknown", 1))

	// 5) aggregates: ByCI (unnest)
	mock.ExpectQuery(`JOIN LATERAL unnest\(x\.related_cis\) AS c ON TRUE`).
		WillReturnRows(sqlmock.NewRows([]string{"label", "count"}).
			AddRow("CI-001", 2).
			AddRow("CI-002", 1))

	// 6) aggregates: rows with no CI
	mock.ExpectQuery(`array_length\(x\.related_cis, 1\)`).
		WillReturnRows(sqlmock.NewRows([]string{"label", "count"}).
			AddRow("No CI", 1))

	rows, aggs, total, totalPages, err := ls.GetLogs(LogFilterInput{
		Page:     1,
		PageSize: 2,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3 got %d", total)
	}
	if totalPages != 2 { // ceil(3/2)=2
		t.Fatalf("expected totalPages=2 got %d", totalPages)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(rows))
	}

	if len(aggs.ByAction) == 0 || aggs.ByAction[0].Label != "submit_request" {
		t.Fatalf("unexpected ByAction: %#v", aggs.ByAction)
	}
	if len(aggs.ByPerson) == 0 || aggs.ByPerson[0].Label == "" {
		t.Fatalf("unexpected ByPerson: %#v", aggs.ByPerson)
	}
	if len(aggs.ByCI) == 0 {
		t.Fatalf("unexpected ByCI: %#v", aggs.ByCI)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func ptrStr(s string) *string { return &s }
func ptrUint(u uint) *uint    { return &u }
