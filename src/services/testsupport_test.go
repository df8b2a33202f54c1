package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
)

// fakeStore is an in-memory Store used to exercise the services
// without a database.
type fakeStore struct {
	users     map[int]models.UserModel
	equipment map[int]models.EquipmentModel
	requests  map[int]models.BorrowRequestModel
	items     map[int]models.BorrowedItemModel
	reminders []models.ReminderModel
	audits    []models.AuditLogModel

	nextUserID      int
	nextEquipmentID int
	nextRequestID   int
	nextItemID      int

	findAllEquipmentCalls int
}

var _ Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:           make(map[int]models.UserModel),
		equipment:       make(map[int]models.EquipmentModel),
		requests:        make(map[int]models.BorrowRequestModel),
		items:           make(map[int]models.BorrowedItemModel),
		nextUserID:      1,
		nextEquipmentID: 1,
		nextRequestID:   1,
		nextItemID:      1,
	}
}

// Transact snapshots the whole store and restores it when fn fails,
// so partial mutations roll back like a real transaction.
func (f *fakeStore) Transact(fn func(Store) error) error {
	snapshot := f.clone()
	if err := fn(f); err != nil {
		*f = *snapshot
		return err
	}
	return nil
}

func (f *fakeStore) clone() *fakeStore {
	c := *f
	c.users = make(map[int]models.UserModel, len(f.users))
	for id, u := range f.users {
		c.users[id] = u
	}
	c.equipment = make(map[int]models.EquipmentModel, len(f.equipment))
	for id, e := range f.equipment {
		c.equipment[id] = e
	}
	c.requests = make(map[int]models.BorrowRequestModel, len(f.requests))
	for id, r := range f.requests {
		c.requests[id] = r
	}
	c.items = make(map[int]models.BorrowedItemModel, len(f.items))
	for id, i := range f.items {
		c.items[id] = i
	}
	c.reminders = append([]models.ReminderModel(nil), f.reminders...)
	c.audits = append([]models.AuditLogModel(nil), f.audits...)
	return &c
}

func (f *fakeStore) CreateUser(user *models.UserModel) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate email %s", user.Email)
		}
	}
	user.Id = f.nextUserID
	f.nextUserID++
	f.users[user.Id] = *user
	return nil
}

func (f *fakeStore) FindUserByID(id int) (*models.UserModel, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	restricted := user
	restricted.Password = ""
	return &restricted, nil
}

func (f *fakeStore) FindUserByEmail(email string) (*models.UserModel, error) {
	for _, user := range f.users {
		if user.Email == email {
			restricted := user
			restricted.Password = ""
			return &restricted, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindUserByEmailWithPassword(email string) (*models.UserModel, error) {
	for _, user := range f.users {
		if user.Email == email {
			full := user
			return &full, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) FindAdminUser() (*models.UserModel, error) {
	ids := make([]int, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if f.users[id].Role == models.RoleAdmin {
			admin := f.users[id]
			admin.Password = ""
			return &admin, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateEquipment(equipment *models.EquipmentModel) error {
	equipment.Id = f.nextEquipmentID
	f.nextEquipmentID++
	f.equipment[equipment.Id] = *equipment
	return nil
}

func (f *fakeStore) FindEquipmentByID(id int) (*models.EquipmentModel, error) {
	equipment, ok := f.equipment[id]
	if !ok {
		return nil, nil
	}
	found := equipment
	return &found, nil
}

func (f *fakeStore) FindAllEquipment() ([]models.EquipmentModel, error) {
	f.findAllEquipmentCalls++
	ids := make([]int, 0, len(f.equipment))
	for id := range f.equipment {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	all := make([]models.EquipmentModel, 0, len(ids))
	for _, id := range ids {
		all = append(all, f.equipment[id])
	}
	return all, nil
}

func (f *fakeStore) SaveEquipment(equipment *models.EquipmentModel) error {
	f.equipment[equipment.Id] = *equipment
	return nil
}

func (f *fakeStore) DeleteEquipment(id int) error {
	delete(f.equipment, id)
	return nil
}

func (f *fakeStore) CreateRequest(request *models.BorrowRequestModel) error {
	request.Id = f.nextRequestID
	f.nextRequestID++
	for i := range request.Items {
		request.Items[i].Id = f.nextItemID
		f.nextItemID++
		request.Items[i].RequestId = request.Id
		f.items[request.Items[i].Id] = request.Items[i]
	}
	stored := *request
	stored.Items = nil
	f.requests[request.Id] = stored
	return nil
}

func (f *fakeStore) FindRequestByID(id int) (*models.BorrowRequestModel, error) {
	request, ok := f.requests[id]
	if !ok {
		return nil, nil
	}
	found := request
	found.Items, _ = f.FindItemsByRequestID(id)
	return &found, nil
}

func (f *fakeStore) SaveRequest(request *models.BorrowRequestModel) error {
	stored := *request
	stored.Items = nil
	f.requests[request.Id] = stored
	return nil
}

func (f *fakeStore) FindRequests(pendingOnly bool, userID *int) ([]models.BorrowRequestModel, error) {
	ids := make([]int, 0, len(f.requests))
	for id := range f.requests {
		ids = append(ids, id)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))

	var result []models.BorrowRequestModel
	for _, id := range ids {
		request := f.requests[id]
		if pendingOnly && request.Status != models.StatusPending {
			continue
		}
		if userID != nil && request.UserId != *userID {
			continue
		}
		request.Items, _ = f.FindItemsByRequestID(id)
		result = append(result, request)
	}
	return result, nil
}

func (f *fakeStore) FindItemsByRequestID(requestID int) ([]models.BorrowedItemModel, error) {
	ids := make([]int, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var result []models.BorrowedItemModel
	for _, id := range ids {
		item := f.items[id]
		if item.RequestId != requestID {
			continue
		}
		if equipment, ok := f.equipment[item.EquipmentId]; ok {
			found := equipment
			item.Equipment = &found
		}
		result = append(result, item)
	}
	return result, nil
}

func (f *fakeStore) FindItemByID(id int) (*models.BorrowedItemModel, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	found := item
	return &found, nil
}

func (f *fakeStore) SaveItem(item *models.BorrowedItemModel) error {
	stored := *item
	stored.Equipment = nil
	f.items[item.Id] = stored
	return nil
}

func (f *fakeStore) DeleteItem(id int) error {
	delete(f.items, id)
	return nil
}

func (f *fakeStore) FindDueRequests(dayStart time.Time) ([]models.BorrowRequestModel, error) {
	dayEnd := dayStart.Add(24 * time.Hour)

	var result []models.BorrowRequestModel
	for _, request := range f.requests {
		if request.Status != models.StatusApproved || request.ReturnDate == nil {
			continue
		}
		due := *request.ReturnDate
		if due.Before(dayStart) || !due.Before(dayEnd) {
			continue
		}
		result = append(result, request)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (f *fakeStore) CreateReminder(reminder *models.ReminderModel) error {
	reminder.Id = len(f.reminders) + 1
	f.reminders = append(f.reminders, *reminder)
	return nil
}

func (f *fakeStore) CreateAuditLog(entry *models.AuditLogModel) error {
	entry.Id = len(f.audits) + 1
	f.audits = append(f.audits, *entry)
	return nil
}

func (f *fakeStore) FindAuditLogs() ([]models.AuditLogModel, error) {
	logs := make([]models.AuditLogModel, len(f.audits))
	copy(logs, f.audits)
	sort.Slice(logs, func(i, j int) bool { return logs[i].Id > logs[j].Id })
	return logs, nil
}

// auditsWithAction filters the recorded audit rows by action kind.
func (f *fakeStore) auditsWithAction(action models.AuditAction) []models.AuditLogModel {
	var result []models.AuditLogModel
	for _, entry := range f.audits {
		if entry.Action == action {
			result = append(result, entry)
		}
	}
	return result
}

// spyNotifier records every notification the services fire.
type spyNotifier struct {
	submitted []submittedCall
	approved  []approvedCall
	returned  []int
	reminders []int

	err error
}

type submittedCall struct {
	student    models.PublicUser
	adminEmail string
	requestID  int
	itemCount  int
}

type approvedCall struct {
	student    models.PublicUser
	requestID  int
	returnDate time.Time
	items      []models.BorrowedItemModel
}

var _ Notifier = (*spyNotifier)(nil)

func (n *spyNotifier) NotifyBorrowSubmitted(student models.PublicUser, adminEmail string, requestID int, items []models.BorrowedItemModel, collectionDateTime time.Time) error {
	n.submitted = append(n.submitted, submittedCall{student: student, adminEmail: adminEmail, requestID: requestID, itemCount: len(items)})
	return n.err
}

func (n *spyNotifier) NotifyApproved(student models.PublicUser, requestID int, returnDate time.Time, items []models.BorrowedItemModel) error {
	n.approved = append(n.approved, approvedCall{student: student, requestID: requestID, returnDate: returnDate, items: items})
	return n.err
}

func (n *spyNotifier) NotifyReturned(student models.PublicUser, requestID int) error {
	n.returned = append(n.returned, requestID)
	return n.err
}

func (n *spyNotifier) NotifyReminder(student models.PublicUser, requestID int, returnDate time.Time) error {
	n.reminders = append(n.reminders, requestID)
	return n.err
}
