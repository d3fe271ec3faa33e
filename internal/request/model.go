package request

import (
	"time"

	"gorm.io/datatypes"
)

// SoftwareRequest is one intake row. The whole form payload is stored
// as JSON in form_data; the promoted columns exist for listing and
// ownership checks without unpacking the payload.
type SoftwareRequest struct {
	ID          uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	RequestNo   string         `json:"request_no" gorm:"size:32;column:request_no;default:''"`
	CIID        string         `json:"ci_id" gorm:"size:32;column:ci_id"`
	Status      string         `json:"status" gorm:"size:32;not null;index"`
	FormData    datatypes.JSON `json:"form_data" gorm:"column:form_data"`
	RequestDate time.Time      `json:"request_date" gorm:"not null;column:request_date"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (SoftwareRequest) TableName() string { return "software_requests" }

// DraftListItem is the flattened row the drafts screen renders.
type DraftListItem struct {
	ID              uint   `json:"id"`
	RequestNo       string `json:"requestNo"`
	CIID            string `json:"ciId"`
	CIName          string `json:"ciName"`
	CIVersion       string `json:"ciVersion"`
	ServiceName     string `json:"serviceName"`
	Requester       string `json:"requester"`
	RequestDate     string `json:"requestDate"`
	Status          string `json:"status"`
	CurrentOperator string `json:"currentOperator"`
}

type ValidateResponse struct {
	Valid        bool              `json:"valid"`
	Errors       map[string]string `json:"errors"`
	FirstInvalid string            `json:"firstInvalid,omitempty"`
}
