package admin

// AdminSearchRequest filters the request register. All filters are
// optional; blank means "any".
type AdminSearchRequest struct {
	Search    string  `json:"search"`
	Status    string  `json:"status"`
	Requester string  `json:"requester"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`

	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// AdminRequestRow is one register row. The display columns come from
// the stored form payload; the account columns from the users join.
type AdminRequestRow struct {
	ID          uint   `json:"id"`
	RequestNo   string `json:"requestNo"`
	CIID        string `json:"ciId"`
	CIName      string `json:"ciName"`
	CIVersion   string `json:"ciVersion"`
	ServiceName string `json:"serviceName"`
	Status      string `json:"status"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	RequestDate string `json:"requestDate"`
	UpdatedAt   string `json:"updatedAt"`
}

type AggKV struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

type Aggregations struct {
	ByStatus  []AggKV `json:"by_status,omitempty"`
	ByService []AggKV `json:"by_service,omitempty"`
}

type AdminSearchResponse struct {
	Message      string            `json:"message"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
	TotalPages   int               `json:"total_pages"`
	TotalRows    int64             `json:"total_rows"`
	Data         []AdminRequestRow `json:"data"`
	Aggregations Aggregations      `json:"aggregations"`
}
