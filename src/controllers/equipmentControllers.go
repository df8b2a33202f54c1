package controllers

import (
	"net/http"
	"strconv"

	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

type EquipmentController struct {
	service *services.EquipmentService
}

func NewEquipmentController(service *services.EquipmentService) *EquipmentController {
	return &EquipmentController{service: service}
}

type equipmentPayload struct {
	Name string `json:"name" binding:"required"`
}

// AddEquipment handles POST requests to add a catalog entry.
func (c *EquipmentController) AddEquipment(ctx *gin.Context) {
	var payload equipmentPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := c.service.AddEquipment(payload.Name, ctx.GetInt("userId"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Equipment added successfully", "equipment": equipment})
}

// UpdateEquipment handles PUT requests to rename a catalog entry.
func (c *EquipmentController) UpdateEquipment(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("equipmentID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var payload equipmentPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment, err := c.service.UpdateEquipment(id, payload.Name, ctx.GetInt("userId"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Equipment updated successfully", "updatedEquipment": equipment})
}

// DeleteEquipment handles DELETE requests to remove a catalog entry.
func (c *EquipmentController) DeleteEquipment(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("equipmentID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	if err := c.service.DeleteEquipment(id, ctx.GetInt("userId")); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}

// GetAllEquipment handles GET requests to list the catalog.
func (c *EquipmentController) GetAllEquipment(ctx *gin.Context) {
	equipment, err := c.service.GetAllEquipment()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"equipmentList": equipment})
}

// GetEquipmentById handles GET requests for one catalog entry.
func (c *EquipmentController) GetEquipmentById(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("equipmentID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	equipment, err := c.service.GetEquipmentById(id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"equipment": equipment})
}

// ImportEquipment handles POST requests uploading an Excel workbook
// of catalog entries.
func (c *EquipmentController) ImportEquipment(ctx *gin.Context) {
	file, _, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing file upload"})
		return
	}
	defer file.Close()

	result, err := c.service.ImportEquipmentFromExcel(file, ctx.GetInt("userId"))
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"imported": result.Imported, "errors": result.Errors})
}

// ExportEquipment handles GET requests downloading the catalog as an
// Excel workbook.
func (c *EquipmentController) ExportEquipment(ctx *gin.Context) {
	ctx.Header("Content-Disposition", `attachment; filename="equipment.xlsx"`)
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := c.service.ExportEquipmentToExcel(ctx.Writer); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
}
