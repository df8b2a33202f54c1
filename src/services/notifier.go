package services

import (
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
)

// Notifier is the notification gateway contract. Every send is
// best-effort: the lifecycle services log failures and never roll a
// committed transition back because of one.
type Notifier interface {
	NotifyBorrowSubmitted(student models.PublicUser, adminEmail string, requestID int, items []models.BorrowedItemModel, collectionDateTime time.Time) error
	NotifyApproved(student models.PublicUser, requestID int, returnDate time.Time, items []models.BorrowedItemModel) error
	NotifyReturned(student models.PublicUser, requestID int) error
	NotifyReminder(student models.PublicUser, requestID int, returnDate time.Time) error
}
