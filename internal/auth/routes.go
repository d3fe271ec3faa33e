package auth

import (
	"github.com/gin-gonic/gin"

	"ci-request-api/config"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, logService LogServicePort, cfg *config.Config, authRequired gin.HandlerFunc) {
	authController := &AuthController{
		AuthService: authService,
		LS:          logService,
		CFG:         cfg,
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/profile", authRequired, authController.Profile)
		authGroup.POST("/logout", authRequired, authController.Logout)
	}
}
