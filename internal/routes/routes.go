package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/niramoy/clinic-booking/internal/audit"
	"github.com/niramoy/clinic-booking/internal/config"
	"github.com/niramoy/clinic-booking/internal/denylist"
	"github.com/niramoy/clinic-booking/internal/handlers"
	infraRepo "github.com/niramoy/clinic-booking/internal/infra/repository"
	"github.com/niramoy/clinic-booking/internal/middleware"
	"github.com/niramoy/clinic-booking/internal/notify"
	"github.com/niramoy/clinic-booking/internal/serial"
	"github.com/niramoy/clinic-booking/internal/timezone"
	ucBooking "github.com/niramoy/clinic-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sender := notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName)
	notifyDispatcher := notify.NewDispatcher(sender)

	deny := denylist.New(func() ([]string, error) {
		return bookingRepo.ListBlacklistedTransactionIDs(context.Background())
	})
	deny.StartAutoRefresh(5*time.Minute, make(chan struct{}))

	allocator := serial.New(bookingRepo)

	clinicLoc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		allocator,
		deny,
		auditDispatcher,
		notifyDispatcher,
		clinicLoc,
	)

	confirmBookingUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo, clinicLoc)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo, clinicLoc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	bookingHandler := handlers.NewBookingHandler(createBookingUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		confirmBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listByDateUC,
		listByMonthUC,
		cfg.Timezone,
	)

	doctorHandler := handlers.NewDoctorHandler(db, bookingRepo)
	serialHandler := handlers.NewSerialHandler(bookingRepo, cfg.Timezone)
	denylistHandler := handlers.NewDenylistHandler(db, deny)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.OptionalIdentity(cfg))
		{
			publicAPI.GET("/doctors", doctorHandler.ListPublic)
			publicAPI.POST(
				"/appointments",
				middleware.RateLimit(rdb, cfg.BookingRatePerMinute),
				bookingHandler.Create,
			)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/me/doctors", doctorHandler.List)
			secured.POST("/me/doctors", doctorHandler.Create)
			secured.PATCH("/me/doctors/:id", doctorHandler.Update)

			secured.GET("/me/denylist", denylistHandler.List)
			secured.POST("/me/denylist", denylistHandler.Add)
			secured.DELETE("/me/denylist/:id", denylistHandler.Delete)
			secured.POST("/me/denylist/refresh", denylistHandler.Refresh)

			secured.GET("/me/serial", serialHandler.Status)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
