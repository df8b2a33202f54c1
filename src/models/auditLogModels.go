package models

import "time"

type AuditAction string

const (
	ActionCreate  AuditAction = "Create"
	ActionUpdate  AuditAction = "Update"
	ActionDelete  AuditAction = "Delete"
	ActionBorrow  AuditAction = "Borrow"
	ActionApprove AuditAction = "Approve"
	ActionReturn  AuditAction = "Return"
	ActionNotify  AuditAction = "Notify"
)

// AuditLogModel is an append-only trace of every state-changing
// action. Every lifecycle transition writes exactly one row.
type AuditLogModel struct {
	Id        int         `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int         `json:"userId" gorm:"column:user_id;not null"`
	RequestId *int        `json:"requestId" gorm:"column:request_id;index"`
	Action    AuditAction `json:"action" gorm:"type:varchar(20);not null"`
	Details   string      `json:"details" gorm:"type:text;not null"`
	Timestamp time.Time   `json:"timestamp" gorm:"not null"`
}
