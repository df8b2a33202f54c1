package repository

import (
	"errors"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"gorm.io/gorm"
)

// publicUserColumns keeps the credential hash out of every lookup
// except the explicit credentialed one used by authentication.
var publicUserColumns = []string{"id", "name", "email", "role"}

// Store is the gorm-backed implementation of the services.Store
// persistence contract.
type Store struct {
	db *gorm.DB
}

var _ services.Store = (*Store)(nil)

// NewStore creates a new instance of Store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transact runs fn against a store bound to a single transaction;
// the transaction commits only when fn returns nil.
func (s *Store) Transact(fn func(services.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func notFoundToNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// ======================= USERS =======================

func (s *Store) CreateUser(user *models.UserModel) error {
	return s.db.Create(user).Error
}

func (s *Store) FindUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.Select(publicUserColumns).First(&user, id)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &user, nil
}

func (s *Store) FindUserByEmail(email string) (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.Select(publicUserColumns).Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &user, nil
}

// FindUserByEmailWithPassword loads the full row including the
// credential hash. Authentication only.
func (s *Store) FindUserByEmailWithPassword(email string) (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &user, nil
}

// FindAdminUser returns the designated notification recipient: the
// longest-standing admin account.
func (s *Store) FindAdminUser() (*models.UserModel, error) {
	var user models.UserModel
	result := s.db.Select(publicUserColumns).
		Where("role = ?", models.RoleAdmin).
		Order("id ASC").
		First(&user)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &user, nil
}

// ======================= EQUIPMENT =======================

func (s *Store) CreateEquipment(equipment *models.EquipmentModel) error {
	return s.db.Create(equipment).Error
}

func (s *Store) FindEquipmentByID(id int) (*models.EquipmentModel, error) {
	var equipment models.EquipmentModel
	result := s.db.First(&equipment, id)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &equipment, nil
}

func (s *Store) FindAllEquipment() ([]models.EquipmentModel, error) {
	var equipment []models.EquipmentModel
	result := s.db.Order("id ASC").Find(&equipment)
	return equipment, result.Error
}

func (s *Store) SaveEquipment(equipment *models.EquipmentModel) error {
	return s.db.Save(equipment).Error
}

func (s *Store) DeleteEquipment(id int) error {
	return s.db.Delete(&models.EquipmentModel{}, id).Error
}

// ======================= BORROW REQUESTS =======================

func (s *Store) CreateRequest(request *models.BorrowRequestModel) error {
	return s.db.Create(request).Error
}

func (s *Store) FindRequestByID(id int) (*models.BorrowRequestModel, error) {
	var request models.BorrowRequestModel
	result := s.db.Preload("Items").First(&request, id)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &request, nil
}

func (s *Store) SaveRequest(request *models.BorrowRequestModel) error {
	return s.db.Omit("Items", "User").Save(request).Error
}

func (s *Store) FindRequests(pendingOnly bool, userID *int) ([]models.BorrowRequestModel, error) {
	query := s.db.Preload("Items").Preload("Items.Equipment")
	if pendingOnly {
		query = query.Where("status = ?", models.StatusPending)
	}
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var requests []models.BorrowRequestModel
	result := query.Order("id DESC").Find(&requests)
	return requests, result.Error
}

func (s *Store) FindItemsByRequestID(requestID int) ([]models.BorrowedItemModel, error) {
	var items []models.BorrowedItemModel
	result := s.db.Preload("Equipment").
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&items)
	return items, result.Error
}

func (s *Store) FindItemByID(id int) (*models.BorrowedItemModel, error) {
	var item models.BorrowedItemModel
	result := s.db.First(&item, id)
	if result.Error != nil {
		return nil, notFoundToNil(result.Error)
	}
	return &item, nil
}

func (s *Store) SaveItem(item *models.BorrowedItemModel) error {
	return s.db.Omit("Equipment").Save(item).Error
}

func (s *Store) DeleteItem(id int) error {
	return s.db.Delete(&models.BorrowedItemModel{}, id).Error
}

// FindDueRequests returns Approved requests whose return date falls
// within the day starting at dayStart.
func (s *Store) FindDueRequests(dayStart time.Time) ([]models.BorrowRequestModel, error) {
	dayEnd := dayStart.Add(24 * time.Hour)

	var requests []models.BorrowRequestModel
	result := s.db.
		Where("status = ?", models.StatusApproved).
		Where("return_date >= ? AND return_date < ?", dayStart, dayEnd).
		Find(&requests)
	return requests, result.Error
}

// ======================= APPEND-ONLY RECORDS =======================

func (s *Store) CreateReminder(reminder *models.ReminderModel) error {
	return s.db.Create(reminder).Error
}

func (s *Store) CreateAuditLog(entry *models.AuditLogModel) error {
	return s.db.Create(entry).Error
}

func (s *Store) FindAuditLogs() ([]models.AuditLogModel, error) {
	var logs []models.AuditLogModel
	result := s.db.Order("id DESC").Find(&logs)
	return logs, result.Error
}
