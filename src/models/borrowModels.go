package models

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusApproved RequestStatus = "Approved"
	StatusReturned RequestStatus = "Returned"
)

// BorrowRequestModel is the aggregate root of one borrowing
// transaction. Status moves Pending -> Approved -> Returned, or
// Pending -> Returned when every line item is denied. ReturnDate is
// only set on approval.
type BorrowRequestModel struct {
	Id                 int                 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId             int                 `json:"userId" gorm:"column:user_id;not null"`
	User               *UserModel          `json:"user,omitempty" gorm:"foreignKey:UserId;references:Id"`
	BorrowDate         time.Time           `json:"borrowDate" gorm:"not null"`
	CollectionDateTime time.Time           `json:"collectionDateTime" gorm:"not null"`
	Status             RequestStatus       `json:"status" gorm:"type:varchar(20);not null"`
	ReturnDate         *time.Time          `json:"returnDate"`
	Items              []BorrowedItemModel `json:"items,omitempty" gorm:"foreignKey:RequestId;references:Id"`
}

// BorrowedItemModel is one line item within a request. SerialNumber is
// populated by the admin at approval, never by the requester.
type BorrowedItemModel struct {
	Id           int             `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestId    int             `json:"requestId" gorm:"column:request_id;not null;index"`
	EquipmentId  int             `json:"equipmentId" gorm:"column:equipment_id;not null"`
	Equipment    *EquipmentModel `json:"equipment,omitempty" gorm:"foreignKey:EquipmentId;references:Id"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	Description  *string         `json:"description" gorm:"type:text"`
	SerialNumber *string         `json:"serialNumber" gorm:"column:serial_number;type:varchar(100)"`
}
