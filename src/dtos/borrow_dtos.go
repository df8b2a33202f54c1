package dtos

import "time"

// BorrowItemInput is one requested line item in a new borrow request.
type BorrowItemInput struct {
	EquipmentID int     `json:"equipmentID" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Description *string `json:"description"`
}

type RequestBorrowDTO struct {
	CollectionDateTime time.Time         `json:"collectionDateTime" binding:"required"`
	Items              []BorrowItemInput `json:"items" binding:"required,min=1,dive"`
}

// ApprovalDecision is the admin's verdict on one borrowed item. When
// Allow is false the item is removed from the request for good.
type ApprovalDecision struct {
	BorrowedItemID int     `json:"borrowedItemID" binding:"required"`
	Allow          bool    `json:"allow"`
	Description    *string `json:"description"`
	SerialNumber   *string `json:"serialNumber"`
}

type ApproveBorrowDTO struct {
	ReturnDate time.Time          `json:"returnDate" binding:"required"`
	Items      []ApprovalDecision `json:"items" binding:"required,min=1,dive"`
}
