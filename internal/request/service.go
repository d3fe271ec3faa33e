package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ci-request-api/internal/form"
	"ci-request-api/internal/logs"
	"ci-request-api/internal/util"
)

// StatusSubmitted marks a request handed to the intake workflow; every
// non-draft save lands here before an operator picks it up.
const StatusSubmitted = "Submitted"

// ErrNotFound deliberately reads the same whether the row is absent or
// owned by someone else.
var ErrNotFound = errors.New("Request not found or access denied")

// Child list identifiers accepted by RemoveChild.
const (
	ChildParentCI   = "parent-ci"
	ChildAttachURL  = "attach-url"
	ChildAttachFile = "attach-file"
)

type RequestServiceAPI interface {
	Create(userID uint, payload *form.FormState) (*SoftwareRequest, error)
	ListDrafts(userID uint) ([]DraftListItem, error)
	Get(userID, id uint) (*SoftwareRequest, error)
	Update(userID, id uint, payload *form.FormState) (*SoftwareRequest, error)
	Delete(userID, id uint) error
	RemoveChild(userID, id uint, childType, childID string) (*SoftwareRequest, error)
}

type RequestService struct {
	DB   *gorm.DB
	Logs *logs.LogService
}

func NewRequestService(db *gorm.DB, logService *logs.LogService) *RequestService {
	return &RequestService{DB: db, Logs: logService}
}

var _ RequestServiceAPI = (*RequestService)(nil)

// Create persists a new request. A draft payload stays a draft; any
// other status submits, which assigns the canonical request and CI
// numbers from the row id.
func (rs *RequestService) Create(userID uint, payload *form.FormState) (*SoftwareRequest, error) {
	if payload == nil {
		return nil, errors.New("payload is required")
	}

	submitted := payload.RequestStatus != "" && payload.RequestStatus != form.StatusDraft

	req := SoftwareRequest{
		UserID:      userID,
		CIID:        payload.CIID,
		Status:      form.StatusDraft,
		RequestDate: time.Now(),
	}
	if submitted {
		req.Status = StatusSubmitted
	}

	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal form data: %w", err)
		}
		req.FormData = raw

		if err := tx.Create(&req).Error; err != nil {
			return err
		}

		payload.RequestID = int(req.ID)
		if submitted {
			req.RequestNo = fmt.Sprintf("REQ-%d", req.ID)
			req.CIID = fmt.Sprintf("CI-%d", req.ID)
			payload.RequestStatus = StatusSubmitted
			payload.CIID = req.CIID
		} else {
			payload.RequestStatus = form.StatusDraft
		}

		raw, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal form data: %w", err)
		}
		req.FormData = raw

		return tx.Model(&SoftwareRequest{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"request_no": req.RequestNo,
				"ci_id":      req.CIID,
				"form_data":  req.FormData,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	action := "create_draft"
	if submitted {
		action = "submit_request"
	}
	rs.audit(userID, action, fmt.Sprintf("request %d (%s) saved as %s", req.ID, req.CIID, req.Status), payload)

	return &req, nil
}

// ListDrafts returns the caller's drafts, newest first. Submitted and
// in-flight requests never appear here.
func (rs *RequestService) ListDrafts(userID uint) ([]DraftListItem, error) {
	var rows []SoftwareRequest
	err := rs.DB.
		Where("user_id = ? AND status = ?", userID, form.StatusDraft).
		Order("request_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]DraftListItem, 0, len(rows))
	for _, row := range rows {
		var payload form.FormState
		if err := json.Unmarshal(row.FormData, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse form data for request %d: %w", row.ID, err)
		}

		requestNo := row.RequestNo
		if requestNo == "" {
			requestNo = "-"
		}

		items = append(items, DraftListItem{
			ID:              row.ID,
			RequestNo:       requestNo,
			CIID:            row.CIID,
			CIName:          payload.CIName,
			CIVersion:       payload.CIVersion,
			ServiceName:     payload.ServiceName,
			Requester:       payload.CreatedBy,
			RequestDate:     util.FormatTimestamp(row.RequestDate),
			Status:          row.Status,
			CurrentOperator: payload.CreatedBy,
		})
	}

	return items, nil
}

func (rs *RequestService) Get(userID, id uint) (*SoftwareRequest, error) {
	var req SoftwareRequest
	err := rs.DB.Where("id = ? AND user_id = ?", id, userID).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Update rewrites an owned request. Saving a draft keeps it a draft;
// saving with any other status submits it.
func (rs *RequestService) Update(userID, id uint, payload *form.FormState) (*SoftwareRequest, error) {
	if payload == nil {
		return nil, errors.New("payload is required")
	}

	req, err := rs.Get(userID, id)
	if err != nil {
		return nil, err
	}

	submitted := payload.RequestStatus != "" && payload.RequestStatus != form.StatusDraft

	payload.RequestID = int(req.ID)
	if submitted {
		req.Status = StatusSubmitted
		req.RequestNo = fmt.Sprintf("REQ-%d", req.ID)
		req.CIID = fmt.Sprintf("CI-%d", req.ID)
		payload.RequestStatus = StatusSubmitted
		payload.CIID = req.CIID
	} else {
		req.Status = form.StatusDraft
		payload.RequestStatus = form.StatusDraft
		req.CIID = payload.CIID
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form data: %w", err)
	}
	req.FormData = raw

	err = rs.DB.Model(&SoftwareRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"request_no": req.RequestNo,
			"ci_id":      req.CIID,
			"form_data":  req.FormData,
		}).Error
	if err != nil {
		return nil, err
	}

	action := "update_draft"
	if submitted {
		action = "submit_request"
	}
	rs.audit(userID, action, fmt.Sprintf("request %d (%s) saved as %s", req.ID, req.CIID, req.Status), payload)

	return req, nil
}

func (rs *RequestService) Delete(userID, id uint) error {
	res := rs.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&SoftwareRequest{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}

	rs.audit(userID, "delete_request", fmt.Sprintf("request %d deleted", id), nil)
	return nil
}

// RemoveChild drops one entry from a request's parent-CI, URL or file
// list and rewrites the stored payload. Step numbers stay contiguous.
func (rs *RequestService) RemoveChild(userID, id uint, childType, childID string) (*SoftwareRequest, error) {
	req, err := rs.Get(userID, id)
	if err != nil {
		return nil, err
	}

	var payload form.FormState
	if err := json.Unmarshal(req.FormData, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse form data for request %d: %w", req.ID, err)
	}

	switch childType {
	case ChildParentCI:
		list := form.ParentCIList{OwnCIID: payload.CIID, Items: payload.ParentCIs}
		list.Remove(childID)
		payload.ParentCIs = list.Items
	case ChildAttachURL:
		list := form.AttachURLList{Items: payload.AttachURLs}
		list.Remove(childID)
		payload.AttachURLs = list.Items
	case ChildAttachFile:
		list := form.AttachFileList{Items: payload.AttachFiles}
		list.Remove(childID)
		payload.AttachFiles = list.Items
	default:
		return nil, fmt.Errorf("unknown child type: %s", childType)
	}

	raw, err := json.Marshal(&payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal form data: %w", err)
	}
	req.FormData = raw

	err = rs.DB.Model(&SoftwareRequest{}).
		Where("id = ?", req.ID).
		Update("form_data", req.FormData).Error
	if err != nil {
		return nil, err
	}

	rs.audit(userID, "remove_"+childType, fmt.Sprintf("request %d: removed %s %s", req.ID, childType, childID), nil)

	return req, nil
}

// audit is best effort; a failed log write never fails the request.
func (rs *RequestService) audit(userID uint, action, message string, payload *form.FormState) {
	if rs.Logs == nil {
		return
	}

	entry := logs.SystemLog{
		Level:   "info",
		Service: "software_request",
		UserID:  &userID,
		Action:  action,
		Message: message,
	}
	if payload != nil {
		for _, p := range payload.ParentCIs {
			entry.RelatedCIs = append(entry.RelatedCIs, p.CIID)
		}
	}

	_ = rs.Logs.Log(entry, nil)
}
