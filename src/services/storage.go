package services

import (
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
)

// Store is the persistence contract the services are built against.
// The gorm-backed implementation lives in src/repository; tests swap
// in an in-memory fake. Find methods return (nil, nil) when the row
// does not exist so the services decide which taxonomy error applies.
type Store interface {
	// Transact runs fn against a store bound to one transaction and
	// commits only if fn returns nil.
	Transact(fn func(Store) error) error

	// Users. The ByID/ByEmail lookups are restricted views and never
	// load the credential hash; the credentialed lookup exists for
	// authentication only.
	CreateUser(user *models.UserModel) error
	FindUserByID(id int) (*models.UserModel, error)
	FindUserByEmail(email string) (*models.UserModel, error)
	FindUserByEmailWithPassword(email string) (*models.UserModel, error)
	FindAdminUser() (*models.UserModel, error)

	// Equipment catalog.
	CreateEquipment(equipment *models.EquipmentModel) error
	FindEquipmentByID(id int) (*models.EquipmentModel, error)
	FindAllEquipment() ([]models.EquipmentModel, error)
	SaveEquipment(equipment *models.EquipmentModel) error
	DeleteEquipment(id int) error

	// Borrow requests and their line items.
	CreateRequest(request *models.BorrowRequestModel) error
	FindRequestByID(id int) (*models.BorrowRequestModel, error)
	SaveRequest(request *models.BorrowRequestModel) error
	FindRequests(pendingOnly bool, userID *int) ([]models.BorrowRequestModel, error)
	FindItemsByRequestID(requestID int) ([]models.BorrowedItemModel, error)
	FindItemByID(id int) (*models.BorrowedItemModel, error)
	SaveItem(item *models.BorrowedItemModel) error
	DeleteItem(id int) error

	// FindDueRequests returns Approved requests whose return date
	// falls on the given day (dayStart is midnight-truncated).
	FindDueRequests(dayStart time.Time) ([]models.BorrowRequestModel, error)

	// Append-only records.
	CreateReminder(reminder *models.ReminderModel) error
	CreateAuditLog(entry *models.AuditLogModel) error
	FindAuditLogs() ([]models.AuditLogModel, error)
}
