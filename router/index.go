package router

import (
	"wisata_booking/handler"
	"wisata_booking/middleware"
	"wisata_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	// Public catalog
	destination := v1.Group("/destinations", logger.New())
	destination.Get("/", middleware.OptionalJWT(), handler.GetDestinations)
	destination.Get("/:slug", middleware.OptionalJWT(), handler.GetDestinationDetail)
	destination.Get("/:destinationId/ticket-types", validate.GetById("destinationId"), handler.GetTicketTypesByDestination)

	promotion := v1.Group("/promotions", logger.New())
	promotion.Get("/", handler.GetPromotions)

	// Booking flow
	booking := v1.Group("/bookings", logger.New())
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/:bookingNumber", middleware.Protected(), handler.GetBookingDetail)
	booking.Get("/:bookingNumber/ticket", middleware.Protected(), handler.GetETicket)
	booking.Post("/:bookingNumber/checkout", middleware.Protected(), handler.InitiateCheckout)
	booking.Post("/:bookingNumber/payment-proof", middleware.Protected(), handler.UploadPaymentProof)

	booking.Get("/ws/:bookingNumber", websocket.New(handler.BookingStatusWebsocket))

	// Checkout provider return routes (browser-level) and notify
	app.Get("/checkout/return", handler.CheckoutReturn)
	app.Get("/checkout/success", handler.CheckoutSuccess)
	app.Get("/checkout/cancel", handler.CheckoutCancel)
	app.Post("/checkout/notify", handler.CheckoutNotify)

	// Admin dashboard
	admin := v1.Group("/admin", logger.New(), middleware.Protected(), middleware.AdminOnly())
	admin.Get("/stats", handler.GetAdminStats)
	admin.Get("/transactions", handler.GetTransactions)
	admin.Patch("/transactions/:bookingNumber/status", validate.UpdateBookingStatus(), handler.UpdateBookingStatus)
	admin.Get("/payment-proofs", handler.GetProofQueue)
	admin.Post("/payment-proofs/:bookingNumber/confirm", handler.ConfirmPaymentProof)
	admin.Post("/payment-proofs/:bookingNumber/reject", handler.RejectPaymentProof)

	admin.Post("/destinations", validate.CreateDestination(), handler.CreateDestination)
	admin.Put("/destinations/:destinationId", validate.GetById("destinationId"), validate.EditDestination(), handler.EditDestination)
	admin.Post("/destinations/:destinationId/image", validate.GetById("destinationId"), handler.UploadDestinationImage)
	admin.Patch("/destinations/:destinationId/disable", validate.GetById("destinationId"), handler.DisableDestination)
	admin.Post("/ticket-types", validate.CreateTicketType(), handler.CreateTicketType)
	admin.Delete("/ticket-types/:ticketTypeId", validate.GetById("ticketTypeId"), handler.DeleteTicketType)
	admin.Post("/promotions", validate.CreatePromotion(), handler.CreatePromotion)
	admin.Patch("/promotions/:promotionId/deactivate", validate.GetById("promotionId"), handler.DeactivatePromotion)
}
