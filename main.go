package main

import (
	"log"
	"os"

	"github.com/fabtrack/fabtrack-backend/src/db"
	"github.com/fabtrack/fabtrack-backend/src/middleware"
	"github.com/fabtrack/fabtrack-backend/src/models"
	"github.com/fabtrack/fabtrack-backend/src/notify"
	"github.com/fabtrack/fabtrack-backend/src/repository"
	"github.com/fabtrack/fabtrack-backend/src/routes"
	"github.com/fabtrack/fabtrack-backend/src/scheduler"
	"github.com/fabtrack/fabtrack-backend/src/seed"
	"github.com/fabtrack/fabtrack-backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.EquipmentModel{},
		&models.BorrowRequestModel{},
		&models.BorrowedItemModel{},
		&models.ReminderModel{},
		&models.AuditLogModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// Bootstrap data (first admin, demo catalog)
	seed.Seed(db)

	// JWT secret setup
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		log.Fatal("JWT_SECRET is required")
	}
	middleware.SetSecretKey(secretKey)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Notification gateway: SMTP when configured, log-only otherwise
	var notifier services.Notifier
	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		smtpPort := os.Getenv("SMTP_PORT")
		if smtpPort == "" {
			smtpPort = "587"
		}
		notifier = notify.NewSMTPMailer(
			smtpHost,
			smtpPort,
			os.Getenv("SMTP_USERNAME"),
			os.Getenv("SMTP_PASSWORD"),
			os.Getenv("EMAIL_FROM"),
		)
	} else {
		log.Println("SMTP not configured, notifications go to the log")
		notifier = notify.LogNotifier{}
	}

	// Services setup
	store := repository.NewStore(db)
	authService := services.NewAuthService(store, secretKey)
	equipmentService := services.NewEquipmentService(store)
	borrowService := services.NewBorrowService(store, notifier)

	// Routes setup
	routes.SetupAuthRoutes(router, authService)
	routes.SetupEquipmentRoutes(router, equipmentService)
	routes.SetupBorrowRoutes(router, borrowService)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// Reminder cron: daily scan unless disabled
	cronSpec := os.Getenv("REMINDER_CRON")
	if cronSpec == "" {
		cronSpec = "0 8 * * *"
	}
	if cronSpec != "off" {
		reminderCron, err := scheduler.StartReminderJob(cronSpec, borrowService)
		if err != nil {
			log.Fatalf("Error starting reminder job: %v\n", err)
		}
		defer reminderCron.Stop()
	}

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}
}
