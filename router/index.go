package router

import (
	"waitify/handler"
	"waitify/middleware"
	"waitify/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	// Public join + booking flow, guests allowed.
	v1.Get("/join-waitlist/:waitlistId", validate.GetById("waitlistId"), handler.GetJoinInfo)
	v1.Post("/join-waitlist/:waitlistId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("waitlistId"), validate.JoinWaitlist(), handler.JoinWaitlist)
	v1.Post("/book-appointment/:appointmentId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("appointmentId"), handler.ClaimAppointment)
	v1.Get("/customer/book/:slug", handler.GetPublicBusiness)
	v1.Post("/qr/resolve", handler.ResolveQR)

	waitlist := v1.Group("/waitlist", logger.New())
	waitlist.Get("/", middleware.Protected(), handler.GetWaitlists)
	waitlist.Post("/", middleware.Protected(), validate.CreateWaitlist(), handler.CreateWaitlist)
	waitlist.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteWaitlists)
	waitlist.Get("/:waitlistId", middleware.Protected(), validate.GetById("waitlistId"), handler.GetWaitlistById)
	waitlist.Put("/:waitlistId", middleware.Protected(), validate.GetById("waitlistId"), validate.UpdateWaitlist(), handler.UpdateWaitlist)
	waitlist.Get("/:waitlistId/qr", middleware.Protected(), validate.GetById("waitlistId"), handler.GetWaitlistQR)
	waitlist.Get("/:waitlistId/entries", middleware.Protected(), validate.GetById("waitlistId"), handler.GetEntries)

	entry := v1.Group("/entries", logger.New())
	entry.Put("/:entryId", middleware.Protected(), validate.GetById("entryId"), validate.UpdateEntry(), handler.UpdateEntry)
	entry.Delete("/:entryId", middleware.Protected(), validate.GetById("entryId"), handler.RemoveEntry)

	table := v1.Group("/tables", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTables)
	table.Put("/:tableId", middleware.Protected(), validate.GetById("tableId"), validate.UpdateTable(), handler.UpdateTable)

	reservation := v1.Group("/reservations", logger.New())
	reservation.Get("/", middleware.Protected(), handler.GetReservations)
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Patch("/:reservationId/seat", middleware.Protected(), validate.GetById("reservationId"), handler.SeatReservation)
	reservation.Patch("/:reservationId/cancel", middleware.Protected(), validate.GetById("reservationId"), handler.CancelReservation)
	reservation.Patch("/:reservationId/complete", middleware.Protected(), validate.GetById("reservationId"), handler.CompleteReservation)

	appointment := v1.Group("/appointments", logger.New())
	appointment.Get("/", middleware.Protected(), handler.GetAppointments)
	appointment.Post("/", middleware.Protected(), validate.CreateAppointment(), handler.CreateAppointment)
	appointment.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteAppointments)
	appointment.Get("/:appointmentId", middleware.Protected(), validate.GetById("appointmentId"), handler.GetAppointmentById)
	appointment.Put("/:appointmentId", middleware.Protected(), validate.GetById("appointmentId"), validate.UpdateAppointment(), handler.UpdateAppointment)
	appointment.Get("/:appointmentId/qr", middleware.Protected(), validate.GetById("appointmentId"), handler.GetAppointmentQR)
	appointment.Post("/:appointmentId/prescription", middleware.Protected(), validate.GetById("appointmentId"), handler.UploadPrescription)

	patient := v1.Group("/patients", logger.New())
	patient.Get("/", middleware.Protected(), handler.GetPatients)
	patient.Post("/", middleware.Protected(), validate.CreatePatient(), handler.CreatePatient)
	patient.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePatients)
	patient.Get("/:patientId", middleware.Protected(), validate.GetById("patientId"), handler.GetPatientById)
	patient.Put("/:patientId", middleware.Protected(), validate.GetById("patientId"), validate.UpdatePatient(), handler.UpdatePatient)

	practitioner := v1.Group("/practitioners", logger.New())
	practitioner.Get("/", middleware.Protected(), handler.GetPractitioners)
	practitioner.Post("/", middleware.Protected(), validate.CreatePractitioner(), handler.CreatePractitioner)
	practitioner.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePractitioners)
	practitioner.Put("/:practitionerId", middleware.Protected(), validate.GetById("practitionerId"), validate.UpdatePractitioner(), handler.UpdatePractitioner)

	service := v1.Group("/services", logger.New())
	service.Get("/", middleware.Protected(), handler.GetServices)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)
	service.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteServices)
	service.Put("/:serviceId", middleware.Protected(), validate.GetById("serviceId"), validate.UpdateService(), handler.UpdateService)

	location := v1.Group("/locations", logger.New())
	location.Get("/", middleware.Protected(), handler.GetLocations)
	location.Post("/", middleware.Protected(), validate.CreateLocation(), handler.CreateLocation)
	location.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteLocations)
	location.Put("/:locationId", middleware.Protected(), validate.GetById("locationId"), validate.UpdateLocation(), handler.UpdateLocation)

	staff := v1.Group("/staff", logger.New())
	staff.Get("/", middleware.Protected(), handler.GetStaff)
	staff.Post("/", middleware.Protected(), validate.CreateStaff(), handler.CreateStaff)
	staff.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteStaff)
	staff.Put("/:staffId", middleware.Protected(), validate.GetById("staffId"), validate.UpdateStaff(), handler.UpdateStaff)

	v1.Get("/customers", middleware.Protected(), handler.GetCustomers)
	v1.Get("/reports", middleware.Protected(), handler.GetDashboardReport)
	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GetUploadSignature)

	notification := v1.Group("/notifications", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Patch("/read-all", middleware.Protected(), handler.MarkAllNotificationsRead)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/me", middleware.Protected(), handler.Me)
	settings.Put("/me", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)
	settings.Get("/business", middleware.Protected(), handler.GetMyBusiness)
	settings.Put("/business", middleware.Protected(), validate.UpdateBusiness(), handler.UpdateBusiness)
	settings.Get("/subscription", middleware.Protected(), handler.GetSubscriptionOverview)
	v1.Get("/business/panels", middleware.Protected(), handler.GetBusinessPanels)

	// Customer portal.
	customer := v1.Group("/customer")
	customer.Get("/profile", middleware.Protected(), handler.Me)
	customer.Get("/waitlists", middleware.Protected(), handler.GetMyEntries)
	customer.Patch("/waitlists/:entryId/cancel", middleware.Protected(), validate.GetById("entryId"), handler.CancelMyEntry)
	customer.Get("/appointments", middleware.Protected(), handler.GetMyAppointments)

	admin := v1.Group("/admin", logger.New())
	admin.Get("/profiles", middleware.AdminOnly(), handler.GetProfiles)
	admin.Patch("/profiles/role", middleware.AdminOnly(), validate.ElevateRole(), handler.ElevateRole)

	// Billing + notification function routes keep the permissive CORS the
	// hosted functions had.
	functions := app.Group("/billing", cors.New(cors.Config{AllowOrigins: "*"}))
	functions.Post("/create-checkout", middleware.Protected(), validate.CreateCheckout(), handler.CreateCheckout)
	functions.Get("/get-subscription", middleware.Protected(), handler.GetSubscription)
	functions.Get("/get-invoices", middleware.Protected(), handler.GetInvoices)
	functions.Post("/get-invoices", middleware.Protected(), handler.GetInvoices)

	notify := app.Group("/notifications", cors.New(cors.Config{AllowOrigins: "*"}))
	notify.Post("/send", middleware.Protected(), validate.SendNotification(), handler.SendNotification)

	app.Get("/ws/waitlist/:waitlistId", websocket.New(handler.WaitlistLive))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "Route not found",
		})
	})
}
