package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminService AdminServiceAPI
}

func (ac *AdminController) SearchRequests(c *gin.Context) {
	var req AdminSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 200 {
		req.PageSize = 20
	}

	resp, err := ac.AdminService.SearchRequests(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (ac *AdminController) ExportRequests(c *gin.Context) {
	var req struct {
		AdminSearchRequest
		Format string `json:"format"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Format = strings.ToLower(strings.TrimSpace(req.Format))
	if req.Format == "" {
		req.Format = "excel"
	}

	contentType, filename, data, err := ac.AdminService.ExportRequests(req.AdminSearchRequest, req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
