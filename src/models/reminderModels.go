package models

import "time"

// ReminderModel records that a due-date reminder went out for a
// request. Rows are append-only.
type ReminderModel struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	RequestId    int       `json:"requestId" gorm:"column:request_id;not null;index"`
	ReminderDate time.Time `json:"reminderDate" gorm:"not null"`
	Sent         bool      `json:"sent" gorm:"not null;default:false"`
}
