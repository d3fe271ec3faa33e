package request

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, requestService RequestServiceAPI, authRequired gin.HandlerFunc) {
	requestController := &RequestController{Service: requestService}

	requestGroup := r.Group("/software-requests")
	requestGroup.Use(authRequired)
	{
		requestGroup.POST("", requestController.CreateRequest)
		requestGroup.GET("", requestController.ListDrafts)
		requestGroup.POST("/validate", requestController.ValidateRequest)
		requestGroup.GET("/:id", requestController.GetRequest)
		requestGroup.PUT("/:id", requestController.UpdateRequest)
		requestGroup.DELETE("/:id", requestController.DeleteRequest)
		requestGroup.DELETE("/:id/:childType/:childId", requestController.RemoveChild)
	}
}
