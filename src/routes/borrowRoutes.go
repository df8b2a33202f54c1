package routes

import (
	"github.com/fabtrack/fabtrack-backend/src/controllers"
	"github.com/fabtrack/fabtrack-backend/src/middleware"
	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupBorrowRoutes(router *gin.Engine, service *services.BorrowService) {

	borrowController := controllers.NewBorrowController(service)

	studentOnly := middleware.RequireRoles(string(models.RoleStudent))
	adminOnly := middleware.RequireRoles(string(models.RoleAdmin))

	borrow := router.Group("/api/borrow")
	borrow.Use(middleware.AuthMiddleware())
	{
		borrow.POST("/request", studentOnly, borrowController.RequestEquipment)
		borrow.PUT("/approve/:requestID", adminOnly, borrowController.ApproveRequest)
		borrow.PUT("/return/:requestID", adminOnly, borrowController.ReturnEquipment)
		borrow.POST("/send-reminder", adminOnly, borrowController.SendReminder)

		borrow.GET("/requests", borrowController.GetAllRequests)
		borrow.GET("/requests/pending", borrowController.GetPendingRequests)
		borrow.GET("/requests/:requestID/items", borrowController.GetItemsForRequest)
		borrow.GET("/logs", adminOnly, borrowController.GetAllLogs)
	}
}
