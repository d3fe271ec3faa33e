package admin

type AdminServiceAPI interface {
	SearchRequests(req AdminSearchRequest) (*AdminSearchResponse, error)
	ExportRequests(req AdminSearchRequest, format string) (contentType, filename string, out []byte, err error)
}

var _ AdminServiceAPI = (*AdminService)(nil)
