package logs

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ci-request-api/internal/util"
)

type LogService struct {
	DB *gorm.DB
}

func (ls *LogService) Log(log SystemLog, metadata interface{}) error {
	var metaStr *string

	// Convert metadata (map/struct) to JSON string if provided
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			str := string(b)
			metaStr = &str
		}
	}

	newLog := SystemLog{
		Level:      log.Level,
		Service:    log.Service,
		UserID:     log.UserID,
		Action:     log.Action,
		Message:    log.Message,
		RequestNo:  log.RequestNo,
		RelatedCIs: log.RelatedCIs,
		Metadata:   metaStr,
		CreatedAt:  time.Now(),
	}

	return ls.DB.Create(&newLog).Error
}

func (ls *LogService) GetLogs(input LogFilterInput) ([]LogRow, LogAggregates, int64, int, error) {
	// Defaults
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 || input.PageSize > 100 {
		input.PageSize = 20
	}

	// Base query (joins users for name + supports search)
	base := ls.DB.
		Table("logs").
		Select("logs.*, a.username as username, a.full_name as full_name").
		Joins("LEFT JOIN users a ON logs.user_id = a.id")

	// Default: last 30 days if no dates
	if input.StartDate == nil && input.EndDate == nil {
		base = base.Where("logs.created_at >= ?", time.Now().AddDate(0, 0, -30))
	}

	// Filters
	if input.UserID != nil {
		base = base.Where("logs.user_id = ?", *input.UserID)
	}
	if input.Level != nil && strings.TrimSpace(*input.Level) != "" {
		base = base.Where("logs.level = ?", strings.TrimSpace(*input.Level))
	}
	if input.Service != nil && strings.TrimSpace(*input.Service) != "" {
		base = base.Where("logs.service = ?", strings.TrimSpace(*input.Service))
	}
	if input.Action != nil && strings.TrimSpace(*input.Action) != "" {
		base = base.Where("logs.action = ?", strings.TrimSpace(*input.Action))
	}

	if input.RequestNo != nil && strings.TrimSpace(*input.RequestNo) != "" {
		base = base.Where("COALESCE(logs.request_no,'') ILIKE ?", "%"+strings.TrimSpace(*input.RequestNo)+"%")
	}

	// CI filter: overlap (ANY match)
	if len(input.RelatedCIs) > 0 {
		base = base.Where("logs.related_cis && ?", pq.Array(input.RelatedCIs))
	}

	start, hasStart, endExclusive, hasEnd, err := util.ParseDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}
	if hasStart {
		base = base.Where("logs.created_at >= ?", start)
	}
	if hasEnd {
		base = base.Where("logs.created_at < ?", endExclusive)
	}

	// Search across columns, including CI ids and the acting user
	if input.Search != nil && strings.TrimSpace(*input.Search) != "" {
		like := "%" + strings.TrimSpace(*input.Search) + "%"
		base = base.Where(
			`CAST(logs.id AS TEXT) ILIKE ?
			 OR logs.level ILIKE ?
			 OR logs.service ILIKE ?
			 OR logs.action ILIKE ?
			 OR logs.message ILIKE ?
			 OR COALESCE(logs.request_no,'') ILIKE ?
			 OR COALESCE(array_to_string(logs.related_cis, ','),'') ILIKE ?
			 OR COALESCE(a.username,'') ILIKE ?
			 OR COALESCE(a.full_name,'') ILIKE ?`,
			like, like, like, like, like, like, like, like, like,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(input.PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	var rows []LogRow
	if err := base.
		Session(&gorm.Session{}).
		Order("logs.created_at DESC").
		Limit(input.PageSize).
		Offset((input.Page - 1) * input.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	aggs, err := ls.getAggregatesFromBase(base)
	if err != nil {
		return nil, LogAggregates{}, 0, 0, err
	}

	return rows, aggs, total, totalPages, nil
}

func (ls *LogService) getAggregatesFromBase(base *gorm.DB) (LogAggregates, error) {
	aggs := LogAggregates{}
	limit := 12

	// Use derived table so filters are identical
	sub := base.Session(&gorm.Session{}).
		Select("logs.user_id, logs.action, logs.related_cis, a.username, a.full_name")

	derived := ls.DB.Table("(?) as x", sub)

	// 1) By action
	{
		type r struct {
			Label string
			Count int64
		}
		var out []r

		if err := derived.Session(&gorm.Session{}).
			Select("x.action AS label, COUNT(*) AS count").
			Group("label").
			Order("count DESC").
			Limit(limit).
			Scan(&out).Error; err != nil {
			return LogAggregates{}, err
		}

		aggs.ByAction = make([]AggItem, 0, len(out))
		for _, row := range out {
			aggs.ByAction = append(aggs.ByAction, AggItem{Label: row.Label, Count: row.Count})
		}
	}

	// 2) By person (user)
	{
		type r struct {
			UserID   *uint
			Username string
			FullName string
			Label    string
			Count    int64
		}
		var out []r

		if err := derived.Session(&gorm.Session{}).
			Select(`
				x.user_id,
				COALESCE(x.username,'') AS username,
				COALESCE(x.full_name,'') AS full_name,
				CASE
					WHEN (COALESCE(x.username,'') = '' AND COALESCE(x.full_name,'') = '')
					THEN 'Unknown'
					ELSE COALESCE(NULLIF(TRIM(x.full_name), ''), x.username)
				END AS label,
				COUNT(*) AS count
			`).
			Group("x.user_id, username, full_name, label").
			Order("count DESC").
			Limit(limit).
			Scan(&out).Error; err != nil {
			return LogAggregates{}, err
		}

		aggs.ByPerson = make([]PersonAggItem, 0, len(out))
		for _, row := range out {
			aggs.ByPerson = append(aggs.ByPerson, PersonAggItem{
				UserID:   row.UserID,
				Username: row.Username,
				FullName: row.FullName,
				Label:    row.Label,
				Count:    row.Count,
			})
		}
	}

	// 3) By CI: unnest text[], plus rows touching no CI at all
	{
		type r struct {
			Label string
			Count int64
		}

		var outA []r
		if err := derived.Session(&gorm.Session{}).
			Select("c AS label, COUNT(*) AS count").
			Joins("JOIN LATERAL unnest(x.related_cis) AS c ON TRUE").
			Group("c").
			Order("count DESC").
			Limit(limit).
			Scan(&outA).Error; err != nil {
			return LogAggregates{}, err
		}

		var outB []r
		if err := derived.Session(&gorm.Session{}).
			Select("'No CI' AS label, COUNT(*) AS count").
			Where("x.related_cis IS NULL OR array_length(x.related_cis, 1) IS NULL OR array_length(x.related_cis, 1) = 0").
			Group("label").
			Scan(&outB).Error; err != nil {
			return LogAggregates{}, err
		}

		// merge (and re-sort)
		m := map[string]int64{}
		for _, row := range outA {
			m[row.Label] += row.Count
		}
		for _, row := range outB {
			m[row.Label] += row.Count
		}

		items := make([]AggItem, 0, len(m))
		for k, v := range m {
			items = append(items, AggItem{Label: k, Count: v})
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Count > items[j].Count })
		if len(items) > limit {
			items = items[:limit]
		}
		aggs.ByCI = items
	}

	return aggs, nil
}
