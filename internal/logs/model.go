package logs

import (
	"time"

	"github.com/lib/pq"
)

type SystemLog struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Level      string         `gorm:"size:20;not null" json:"level"`
	Service    string         `gorm:"size:100;not null" json:"service"`
	UserID     *uint          `gorm:"index" json:"user_id,omitempty"`
	Action     string         `gorm:"size:255;not null" json:"action"`
	Message    string         `gorm:"type:text;not null" json:"message"`
	RequestNo  *string        `gorm:"size:32;column:request_no" json:"request_no,omitempty"`
	RelatedCIs pq.StringArray `gorm:"type:text[];column:related_cis" json:"related_cis"`
	Metadata   *string        `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (SystemLog) TableName() string {
	return "logs"
}

type LogFilterInput struct {
	UserID     *uint    `json:"user_id"`
	Level      *string  `json:"level"`
	Service    *string  `json:"service"`
	Action     *string  `json:"action"`
	RequestNo  *string  `json:"request_no"`
	RelatedCIs []string `json:"related_cis"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   *string `json:"end_date"`   // "YYYY-MM-DD"

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

type AggItem struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type PersonAggItem struct {
	UserID   *uint  `json:"user_id,omitempty"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Label    string `json:"label"`
	Count    int64  `json:"count"`
}

type LogAggregates struct {
	ByAction []AggItem       `json:"by_action"`
	ByCI     []AggItem       `json:"by_ci"`
	ByPerson []PersonAggItem `json:"by_person"`
}

type LogRow struct {
	SystemLog
	Username string `json:"username" gorm:"column:username"`
	FullName string `json:"full_name" gorm:"column:full_name"`
}
