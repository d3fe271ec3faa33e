package admin

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, adminService AdminServiceAPI, authRequired gin.HandlerFunc) {
	adminController := &AdminController{AdminService: adminService}

	adminGroup := r.Group("/admin")
	adminGroup.Use(authRequired)
	{
		adminGroup.POST("/requests", adminController.SearchRequests)
		adminGroup.POST("/requests/export", adminController.ExportRequests)
	}
}
