package controllers

import (
	"net/http"
	"strconv"

	"github.com/fabtrack/fabtrack-backend/src/dtos"
	"github.com/fabtrack/fabtrack-backend/src/middleware"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

type BorrowController struct {
	service *services.BorrowService
}

func NewBorrowController(service *services.BorrowService) *BorrowController {
	return &BorrowController{service: service}
}

// RequestEquipment handles POST requests from students creating a new
// borrow request.
func (c *BorrowController) RequestEquipment(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing caller identity"})
		return
	}

	var payload dtos.RequestBorrowDTO
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := c.service.RequestEquipment(caller.Id, payload.CollectionDateTime, payload.Items)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Request submitted", "borrowRequest": request})
}

// ApproveRequest handles PUT requests from admins deciding on a
// pending borrow request item by item.
func (c *BorrowController) ApproveRequest(ctx *gin.Context) {
	requestID, err := strconv.Atoi(ctx.Param("requestID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var payload dtos.ApproveBorrowDTO
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := c.service.ApproveRequest(requestID, payload.ReturnDate, payload.Items)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Request processed", "approvedRequest": request})
}

// ReturnEquipment handles PUT requests from admins marking an
// approved request as returned.
func (c *BorrowController) ReturnEquipment(ctx *gin.Context) {
	requestID, err := strconv.Atoi(ctx.Param("requestID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	request, err := c.service.ReturnEquipment(requestID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Equipment returned", "returnedRequest": request})
}

// SendReminder handles POST requests triggering the due-return
// reminder scan. Zero matches is a normal outcome.
func (c *BorrowController) SendReminder(ctx *gin.Context) {
	count, err := c.service.SendReminderForDueReturns()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	message := "Reminders sent successfully"
	if count == 0 {
		message = "No due requests"
	}
	ctx.JSON(http.StatusOK, gin.H{"message": message, "count": count})
}

// GetAllRequests handles GET requests listing borrow requests; admins
// see everything, students only their own.
func (c *BorrowController) GetAllRequests(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing caller identity"})
		return
	}

	requests, err := c.service.GetAllRequests(caller)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// GetPendingRequests handles GET requests listing pending borrow
// requests, scoped the same way as GetAllRequests.
func (c *BorrowController) GetPendingRequests(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing caller identity"})
		return
	}

	requests, err := c.service.GetPendingRequests(caller)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, requests)
}

// GetItemsForRequest handles GET requests for the items of one
// borrow request.
func (c *BorrowController) GetItemsForRequest(ctx *gin.Context) {
	caller, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Missing caller identity"})
		return
	}

	requestID, err := strconv.Atoi(ctx.Param("requestID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	items, err := c.service.GetItemsForRequest(caller, requestID)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetAllLogs handles GET requests for the audit trail (admin only,
// enforced by the route group).
func (c *BorrowController) GetAllLogs(ctx *gin.Context) {
	logs, err := c.service.GetAllLogs()
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, logs)
}
