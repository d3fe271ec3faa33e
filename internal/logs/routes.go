package logs

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService, authRequired gin.HandlerFunc) {
	logController := &LogController{LogService: logService}

	logGroup := r.Group("/logs")
	logGroup.Use(authRequired)
	{
		logGroup.POST("/search", logController.GetLogs)
	}
}
