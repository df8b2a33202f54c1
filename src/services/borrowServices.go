package services

import (
	"fmt"
	"log"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/dtos"
	"github.com/fabtrack/fabtrack-backend/src/models"
)

// reminderHorizon is how far ahead of the return date the reminder
// scan looks. A request matches only when its return date falls on
// exactly this day (see SendReminderForDueReturns).
const reminderHorizon = 48 * time.Hour

// BorrowService owns the borrow-request state machine: request,
// per-item approval, return, and the due-date reminder scan. Every
// successful transition appends exactly one audit log row.
type BorrowService struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

// NewBorrowService creates a new instance of BorrowService.
func NewBorrowService(store Store, notifier Notifier) *BorrowService {
	return &BorrowService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// RequestEquipment creates a Pending request with one borrowed item
// per input. The requester must be an existing Student and every
// equipment id must resolve; the request and its items are created in
// one transaction so a failure leaves nothing behind.
func (s *BorrowService) RequestEquipment(requesterID int, collectionDateTime time.Time, items []dtos.BorrowItemInput) (*models.BorrowRequestModel, error) {
	requester, err := s.store.FindUserByID(requesterID)
	if err != nil {
		return nil, err
	}
	if requester == nil || requester.Role != models.RoleStudent {
		return nil, fmt.Errorf("%w: requester %d is not a student", ErrInvalidActor, requesterID)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: request has no items", ErrInvalidInput)
	}

	request := &models.BorrowRequestModel{
		UserId:             requesterID,
		BorrowDate:         s.now(),
		CollectionDateTime: collectionDateTime,
		Status:             models.StatusPending,
		ReturnDate:         nil,
	}

	err = s.store.Transact(func(tx Store) error {
		for _, item := range items {
			equipment, err := tx.FindEquipmentByID(item.EquipmentID)
			if err != nil {
				return err
			}
			if equipment == nil {
				return fmt.Errorf("%w: equipment %d", ErrNotFound, item.EquipmentID)
			}
			request.Items = append(request.Items, models.BorrowedItemModel{
				EquipmentId:  item.EquipmentID,
				Quantity:     item.Quantity,
				Description:  item.Description,
				SerialNumber: nil,
			})
		}

		if err := tx.CreateRequest(request); err != nil {
			return err
		}

		return tx.CreateAuditLog(&models.AuditLogModel{
			UserId:    requesterID,
			RequestId: &request.Id,
			Action:    models.ActionBorrow,
			Details:   fmt.Sprintf("User %d submitted borrow request #%d with %d item(s)", requesterID, request.Id, len(request.Items)),
			Timestamp: s.now(),
		})
	})
	if err != nil {
		request.Items = nil
		return nil, err
	}

	s.notifySubmitted(requester, request)

	return request, nil
}

func (s *BorrowService) notifySubmitted(requester *models.UserModel, request *models.BorrowRequestModel) {
	admin, err := s.store.FindAdminUser()
	if err != nil || admin == nil {
		log.Printf("borrow request #%d: no admin recipient for notification: %v", request.Id, err)
		return
	}
	items, err := s.store.FindItemsByRequestID(request.Id)
	if err != nil {
		log.Printf("borrow request #%d: could not load items for notification: %v", request.Id, err)
		items = request.Items
	}
	if err := s.notifier.NotifyBorrowSubmitted(requester.Public(), admin.Email, request.Id, items, request.CollectionDateTime); err != nil {
		log.Printf("borrow request #%d: submit notification failed: %v", request.Id, err)
	}
}

// ApproveRequest applies the admin's per-item decisions to a Pending
// request. Denied items are removed for good; allowed items may get a
// new description or serial number (empty values never clear an
// existing one). When no item survives the request closes as Returned
// with no return date, otherwise it becomes Approved with the given
// return date.
func (s *BorrowService) ApproveRequest(requestID int, returnDate time.Time, decisions []dtos.ApprovalDecision) (*models.BorrowRequestModel, error) {
	request, err := s.store.FindRequestByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil || request.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: request %d is not pending", ErrInvalidState, requestID)
	}

	err = s.store.Transact(func(tx Store) error {
		for _, decision := range decisions {
			item, err := tx.FindItemByID(decision.BorrowedItemID)
			if err != nil {
				return err
			}
			if item == nil || item.RequestId != requestID {
				return fmt.Errorf("%w: item %d does not belong to request %d", ErrNotFound, decision.BorrowedItemID, requestID)
			}

			if !decision.Allow {
				if err := tx.DeleteItem(item.Id); err != nil {
					return err
				}
				continue
			}

			if decision.Description != nil && *decision.Description != "" {
				item.Description = decision.Description
			}
			if decision.SerialNumber != nil && *decision.SerialNumber != "" {
				item.SerialNumber = decision.SerialNumber
			}
			if err := tx.SaveItem(item); err != nil {
				return err
			}
		}

		remaining, err := tx.FindItemsByRequestID(requestID)
		if err != nil {
			return err
		}

		if len(remaining) == 0 {
			// Nothing was granted, so there is nothing out on loan:
			// the request closes immediately and no return date applies.
			request.Status = models.StatusReturned
			request.ReturnDate = nil
		} else {
			request.Status = models.StatusApproved
			request.ReturnDate = &returnDate
		}
		// The preloaded items predate the decisions; callers get the
		// surviving items as just written.
		request.Items = remaining
		if err := tx.SaveRequest(request); err != nil {
			return err
		}

		return tx.CreateAuditLog(&models.AuditLogModel{
			UserId:    request.UserId,
			RequestId: &request.Id,
			Action:    models.ActionApprove,
			Details:   fmt.Sprintf("Admin processed borrow request #%d: %d item(s) granted", requestID, len(remaining)),
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifyApproved(request)

	return request, nil
}

func (s *BorrowService) notifyApproved(request *models.BorrowRequestModel) {
	student, err := s.store.FindUserByID(request.UserId)
	if err != nil || student == nil {
		log.Printf("borrow request #%d: could not resolve requester for notification: %v", request.Id, err)
		return
	}
	items, err := s.store.FindItemsByRequestID(request.Id)
	if err != nil {
		log.Printf("borrow request #%d: could not load items for notification: %v", request.Id, err)
		items = nil
	}
	var deadline time.Time
	if request.ReturnDate != nil {
		deadline = *request.ReturnDate
	}
	if err := s.notifier.NotifyApproved(student.Public(), request.Id, deadline, items); err != nil {
		log.Printf("borrow request #%d: approval notification failed: %v", request.Id, err)
	}
}

// ReturnEquipment marks an Approved request as Returned.
func (s *BorrowService) ReturnEquipment(requestID int) (*models.BorrowRequestModel, error) {
	request, err := s.store.FindRequestByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil || request.Status != models.StatusApproved {
		return nil, fmt.Errorf("%w: request %d is not approved", ErrInvalidState, requestID)
	}

	err = s.store.Transact(func(tx Store) error {
		request.Status = models.StatusReturned
		if err := tx.SaveRequest(request); err != nil {
			return err
		}
		return tx.CreateAuditLog(&models.AuditLogModel{
			UserId:    request.UserId,
			RequestId: &request.Id,
			Action:    models.ActionReturn,
			Details:   fmt.Sprintf("User %d returned borrow request #%d", request.UserId, requestID),
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	if student, err := s.store.FindUserByID(request.UserId); err == nil && student != nil {
		if err := s.notifier.NotifyReturned(student.Public(), request.Id); err != nil {
			log.Printf("borrow request #%d: return notification failed: %v", request.Id, err)
		}
	}

	return request, nil
}

// SendReminderForDueReturns notifies every requester whose Approved
// request is due in exactly two days (both sides truncated to
// midnight) and returns how many reminders went out. A request whose
// requester cannot be resolved is skipped without aborting the scan.
// Zero matches is a normal outcome, not an error.
func (s *BorrowService) SendReminderForDueReturns() (int, error) {
	dueDay := truncateToDay(s.now().Add(reminderHorizon))

	dueRequests, err := s.store.FindDueRequests(dueDay)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, request := range dueRequests {
		student, err := s.store.FindUserByID(request.UserId)
		if err != nil || student == nil {
			log.Printf("reminder scan: skipping request #%d, requester %d not resolvable: %v", request.Id, request.UserId, err)
			continue
		}

		if err := s.notifier.NotifyReminder(student.Public(), request.Id, *request.ReturnDate); err != nil {
			log.Printf("reminder scan: reminder mail for request #%d failed: %v", request.Id, err)
		}

		requestID := request.Id
		err = s.store.Transact(func(tx Store) error {
			if err := tx.CreateReminder(&models.ReminderModel{
				RequestId:    requestID,
				ReminderDate: s.now(),
				Sent:         true,
			}); err != nil {
				return err
			}
			return tx.CreateAuditLog(&models.AuditLogModel{
				UserId:    request.UserId,
				RequestId: &requestID,
				Action:    models.ActionNotify,
				Details:   fmt.Sprintf("Reminder sent to user %d for return of request #%d", request.UserId, requestID),
				Timestamp: s.now(),
			})
		})
		if err != nil {
			log.Printf("reminder scan: could not record reminder for request #%d: %v", requestID, err)
			continue
		}
		sent++
	}

	return sent, nil
}

// GetAllRequests lists every request for admins, or only the caller's
// own for students. Newest first.
func (s *BorrowService) GetAllRequests(caller models.PublicUser) ([]models.BorrowRequestModel, error) {
	return s.listRequests(caller, false)
}

// GetPendingRequests is GetAllRequests restricted to Pending status.
func (s *BorrowService) GetPendingRequests(caller models.PublicUser) ([]models.BorrowRequestModel, error) {
	return s.listRequests(caller, true)
}

func (s *BorrowService) listRequests(caller models.PublicUser, pendingOnly bool) ([]models.BorrowRequestModel, error) {
	if caller.Role == models.RoleAdmin {
		return s.store.FindRequests(pendingOnly, nil)
	}
	return s.store.FindRequests(pendingOnly, &caller.Id)
}

// GetItemsForRequest returns the borrowed items of a request together
// with their equipment detail. Students may only read their own
// requests.
func (s *BorrowService) GetItemsForRequest(caller models.PublicUser, requestID int) ([]models.BorrowedItemModel, error) {
	request, err := s.store.FindRequestByID(requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: request %d", ErrNotFound, requestID)
	}
	if caller.Role != models.RoleAdmin && request.UserId != caller.Id {
		return nil, fmt.Errorf("%w: request %d belongs to another user", ErrForbidden, requestID)
	}
	return s.store.FindItemsByRequestID(requestID)
}

// GetAllLogs returns every audit log row, newest first.
func (s *BorrowService) GetAllLogs() ([]models.AuditLogModel, error) {
	return s.store.FindAuditLogs()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
