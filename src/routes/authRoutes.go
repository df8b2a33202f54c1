package routes

import (
	"github.com/fabtrack/fabtrack-backend/src/controllers"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.Engine, service *services.AuthService) {

	authController := controllers.NewAuthController(service)

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authController.SignUp)
		auth.POST("/login", authController.Login)
	}
}
