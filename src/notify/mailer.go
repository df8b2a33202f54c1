package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/fabtrack/fabtrack-backend/src/services"
)

// SMTPMailer sends the lifecycle notification mails over plain SMTP.
// Every send is best-effort; callers treat a returned error as
// something to log, not to propagate.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

var _ services.Notifier = (*SMTPMailer)(nil)

// NewSMTPMailer creates a new instance of SMTPMailer.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	message := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, message)
}

func (m *SMTPMailer) NotifyBorrowSubmitted(student models.PublicUser, adminEmail string, requestID int, items []models.BorrowedItemModel, collectionDateTime time.Time) error {
	studentBody := borrowSubmittedStudentBody(student.Name, requestID, items, collectionDateTime)
	if err := m.send(student.Email, fmt.Sprintf("Borrow Request #%d Submitted", requestID), studentBody); err != nil {
		return err
	}

	adminBody := borrowSubmittedAdminBody(student.Name, requestID, items, collectionDateTime)
	return m.send(adminEmail, fmt.Sprintf("New Borrow Request #%d", requestID), adminBody)
}

func (m *SMTPMailer) NotifyApproved(student models.PublicUser, requestID int, returnDate time.Time, items []models.BorrowedItemModel) error {
	body := approvalBody(student.Name, requestID, returnDate, items)
	return m.send(student.Email, fmt.Sprintf("Borrow Request #%d Approved", requestID), body)
}

func (m *SMTPMailer) NotifyReturned(student models.PublicUser, requestID int) error {
	body := returnConfirmationBody(student.Name, requestID)
	return m.send(student.Email, fmt.Sprintf("Borrow Request #%d Returned", requestID), body)
}

func (m *SMTPMailer) NotifyReminder(student models.PublicUser, requestID int, returnDate time.Time) error {
	body := reminderBody(student.Name, requestID, returnDate)
	return m.send(student.Email, "Equipment Return Reminder", body)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006 at 3:04 PM")
}

func itemLines(items []models.BorrowedItemModel) string {
	var b strings.Builder
	for _, item := range items {
		name := "Unknown Equipment"
		if item.Equipment != nil {
			name = item.Equipment.Name
		}
		line := fmt.Sprintf(" - %s (Qty: %d", name, item.Quantity)
		if item.SerialNumber != nil && *item.SerialNumber != "" {
			line += fmt.Sprintf(" | SN: %s", *item.SerialNumber)
		}
		if item.Description != nil && *item.Description != "" {
			line += fmt.Sprintf(" | Description: %q", *item.Description)
		}
		line += ")\n"
		b.WriteString(line)
	}
	return b.String()
}

func borrowSubmittedStudentBody(studentName string, requestID int, items []models.BorrowedItemModel, collectionDateTime time.Time) string {
	return fmt.Sprintf("Dear %s,\n\nYour borrow request #%d has been submitted with the following items:\n\n%s\nYou will need to go to the fablab to collect them at %s.\n\nRegards,\nFabtrack",
		studentName, requestID, itemLines(items), formatDate(collectionDateTime))
}

func borrowSubmittedAdminBody(studentName string, requestID int, items []models.BorrowedItemModel, collectionDateTime time.Time) string {
	body := fmt.Sprintf("A new borrow request #%d has been submitted by %s with the following items:\n\n%s",
		requestID, studentName, itemLines(items))
	if !collectionDateTime.IsZero() {
		body += fmt.Sprintf("\nRequested pick-up date/time: %s\n", formatDate(collectionDateTime))
	}
	body += "\nPlease prepare the component(s) for pickup by the pickup time and do not forget to validate that the components have been given out.\n\nRegards,\nFabtrack"
	return body
}

func approvalBody(studentName string, requestID int, returnDate time.Time, items []models.BorrowedItemModel) string {
	if len(items) == 0 {
		return fmt.Sprintf("Dear %s,\n\nYour borrow request #%d has been reviewed. None of the requested items could be granted, so the request is now closed.\n\nRegards,\nFabtrack",
			studentName, requestID)
	}
	return fmt.Sprintf("Dear %s,\n\nYour borrow request #%d has been approved.\nReturn deadline: %s\n\nApproved items:\n%s\nEnsure to return all items on time.\n\nRegards,\nFabtrack",
		studentName, requestID, formatDate(returnDate), itemLines(items))
}

func returnConfirmationBody(studentName string, requestID int) string {
	return fmt.Sprintf("Dear %s,\n\nYour borrow request #%d has been marked as returned by the admin. If you have any questions, contact the lab staff.\n\nRegards,\nFabtrack",
		studentName, requestID)
}

func reminderBody(studentName string, requestID int, returnDate time.Time) string {
	return fmt.Sprintf("Dear %s,\n\nThis is a reminder that your borrow request #%d is due on %s.\n\nRegards,\nFabtrack",
		studentName, requestID, formatDate(returnDate))
}

// LogNotifier is the fallback gateway used when SMTP is not
// configured: every notification is written to the process log so
// local runs still show what would have gone out.
type LogNotifier struct{}

var _ services.Notifier = (*LogNotifier)(nil)

func (LogNotifier) NotifyBorrowSubmitted(student models.PublicUser, adminEmail string, requestID int, items []models.BorrowedItemModel, collectionDateTime time.Time) error {
	log.Printf("[notify] borrow request #%d submitted by %s (%d items), admin copy to %s", requestID, student.Email, len(items), adminEmail)
	return nil
}

func (LogNotifier) NotifyApproved(student models.PublicUser, requestID int, returnDate time.Time, items []models.BorrowedItemModel) error {
	log.Printf("[notify] borrow request #%d approved for %s, %d item(s), due %s", requestID, student.Email, len(items), formatDate(returnDate))
	return nil
}

func (LogNotifier) NotifyReturned(student models.PublicUser, requestID int) error {
	log.Printf("[notify] borrow request #%d returned, confirmation to %s", requestID, student.Email)
	return nil
}

func (LogNotifier) NotifyReminder(student models.PublicUser, requestID int, returnDate time.Time) error {
	log.Printf("[notify] reminder for borrow request #%d to %s, due %s", requestID, student.Email, formatDate(returnDate))
	return nil
}
