package scheduler

import (
	"log"

	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/robfig/cron/v3"
)

// StartReminderJob schedules the due-return reminder scan. The scan
// itself lives in the borrow service; this is only the trigger. The
// returned cron can be stopped on shutdown.
func StartReminderJob(spec string, service *services.BorrowService) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		count, err := service.SendReminderForDueReturns()
		if err != nil {
			log.Printf("reminder job failed: %v", err)
			return
		}
		if count == 0 {
			log.Println("reminder job: no due requests")
			return
		}
		log.Printf("reminder job: sent %d reminder(s)", count)
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
