package routes

import (
	"github.com/fabtrack/fabtrack-backend/src/controllers"
	"github.com/fabtrack/fabtrack-backend/src/middleware"
	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupEquipmentRoutes(router *gin.Engine, service *services.EquipmentService) {

	equipmentController := controllers.NewEquipmentController(service)

	// Reads are open to every authenticated user
	equipment := router.Group("/equipment")
	equipment.Use(middleware.AuthMiddleware())
	{
		equipment.GET("/", equipmentController.GetAllEquipment)
		equipment.GET("/:equipmentID", equipmentController.GetEquipmentById)
	}

	// Mutations and bulk transfer are admin only
	adminOnly := middleware.RequireRoles(string(models.RoleAdmin))
	{
		equipment.POST("/", adminOnly, equipmentController.AddEquipment)
		equipment.PUT("/:equipmentID", adminOnly, equipmentController.UpdateEquipment)
		equipment.DELETE("/:equipmentID", adminOnly, equipmentController.DeleteEquipment)
		equipment.POST("/import", adminOnly, equipmentController.ImportEquipment)
		equipment.GET("/export", adminOnly, equipmentController.ExportEquipment)
	}
}
