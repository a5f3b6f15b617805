package handler

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// InitiateCheckout creates a checkout session for a pending booking and
// returns the provider redirect URL. The booking must already exist:
// creation and checkout are strictly sequential. On any failure the booking
// stays pending/unpaid and the visitor can retry.
func InitiateCheckout(c *fiber.Ctx) error {
	booking, err := findOwnedBooking(c, c.Params("bookingNumber"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Code, fe.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.Status != model.StatusPending || booking.PaymentStatus != model.PaymentUnpaid {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_PAYABLE, nil)
	}

	db := database.DB

	session := model.CheckoutSession{
		BookingId:  booking.ID,
		SessionRef: uuid.NewString(),
		Amount:     booking.TotalPrice,
		Status:     model.SessionPending,
		ExpiresAt:  time.Now().Add(15 * time.Minute),
	}
	if err := db.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PAYMENT_URL_FAILED, err)
	}

	checkout := NewCheckout()
	paymentUrl, err := checkout.BuildCheckoutURL(model.CheckoutRequest{
		SessionRef:    session.SessionRef,
		BookingNumber: booking.BookingNumber,
		Amount:        booking.TotalPrice,
		Destination:   booking.Destination.Name,
		TicketName:    booking.TicketType.Name,
		Quantity:      booking.Quantity,
		VisitDate:     booking.VisitDate.String(),
		VisitorName:   booking.VisitorName,
	})
	if err != nil {
		// the session row stays behind and ages out via the sweeper
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PAYMENT_URL_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"paymentUrl": paymentUrl,
		"sessionRef": session.SessionRef,
	})
}

// reconcileBooking applies the return outcome to the booking through the
// central transition helpers. Idempotent: re-applying the same terminal
// state on a page reload is harmless.
func reconcileBooking(booking *model.Booking, outcome string) error {
	db := database.DB

	switch outcome {
	case "success":
		if err := helper.MarkPaid(db, booking); err != nil {
			return err
		}
		utils.SendBookingConfirmationEmail(booking.VisitorEmail, utils.BookingEmailData{
			BookingNumber: booking.BookingNumber,
			Destination:   booking.Destination.Name,
			TicketName:    booking.TicketType.Name,
			VisitDate:     booking.VisitDate.String(),
			Quantity:      booking.Quantity,
			TotalPrice:    booking.TotalPrice,
			VisitorName:   booking.VisitorName,
			PaidAt:        time.Now().Format("15:04 - 02/01/2006"),
		})
		return nil
	case "cancel":
		if booking.Status == model.StatusCancelled {
			return nil
		}
		if err := helper.MarkCancelled(db, booking); err != nil {
			return err
		}
		utils.SendBookingCancelledEmail(booking.VisitorEmail, utils.BookingEmailData{
			BookingNumber: booking.BookingNumber,
			Destination:   booking.Destination.Name,
			TicketName:    booking.TicketType.Name,
			VisitDate:     booking.VisitDate.String(),
			Quantity:      booking.Quantity,
			TotalPrice:    booking.TotalPrice,
			VisitorName:   booking.VisitorName,
			CancelledAt:   time.Now().Format("15:04 - 02/01/2006"),
		})
		return nil
	}
	return fmt.Errorf("unknown outcome %q", outcome)
}

func loadBookingByNumber(bookingNumber string) (*model.Booking, error) {
	var booking model.Booking
	err := database.DB.
		Preload("Destination").
		Preload("TicketType").
		Where("booking_number = ?", bookingNumber).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckoutSuccess is the success return route. The booking id arrives in the
// query string and the outcome is implied by which route was hit.
func CheckoutSuccess(c *fiber.Ctx) error {
	bookingNumber := c.Query("booking")
	if bookingNumber == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_FOUND, nil)
	}

	booking, err := loadBookingByNumber(bookingNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if err := reconcileBooking(booking, "success"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update booking", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber": booking.BookingNumber,
		"destination":   booking.Destination.Name,
		"totalPrice":    booking.TotalPrice,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
	})
}

// CheckoutCancel is the cancel return route. The booking is cancelled,
// payment status left untouched; retrying produces a fresh booking.
func CheckoutCancel(c *fiber.Ctx) error {
	bookingNumber := c.Query("booking")
	if bookingNumber == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_FOUND, nil)
	}

	booking, err := loadBookingByNumber(bookingNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if err := reconcileBooking(booking, "cancel"); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update booking", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber": booking.BookingNumber,
		"destination":   booking.Destination.Name,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
		"retry": fiber.Map{
			"destinationId": booking.DestinationId,
			"ticketTypeId":  booking.TicketTypeId,
			"quantity":      booking.Quantity,
		},
	})
}

// CheckoutReturn handles the provider's signed redirect and forwards the
// browser to the frontend result page.
func CheckoutReturn(c *fiber.Ctx) error {
	query, _ := url.ParseQuery(string(c.Request().URI().QueryString()))

	checkout := NewCheckout()
	result := checkout.VerifyReturn(query)

	frontend := os.Getenv("FRONTEND_URL")

	if !result.IsSuccess {
		return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=%s", frontend, url.QueryEscape(result.Message)))
	}

	var session model.CheckoutSession
	if err := database.DB.Where("session_ref = ?", result.SessionRef).First(&session).Error; err != nil {
		return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=unknown-session", frontend))
	}

	booking, err := loadBookingById(session.BookingId)
	if err != nil {
		return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=unknown-booking", frontend))
	}

	if result.Outcome == "success" {
		database.DB.Model(&session).Update("status", model.SessionPaid)
		if err := reconcileBooking(booking, "success"); err != nil {
			return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=update-failed", frontend))
		}
		return c.Redirect(fmt.Sprintf("%s/checkout/success?booking=%s", frontend, booking.BookingNumber))
	}

	database.DB.Model(&session).Update("status", model.SessionCancelled)
	if err := reconcileBooking(booking, "cancel"); err != nil {
		return c.Redirect(fmt.Sprintf("%s/payment-failed?reason=update-failed", frontend))
	}
	return c.Redirect(fmt.Sprintf("%s/checkout/cancel?booking=%s", frontend, booking.BookingNumber))
}

func loadBookingById(id uint) (*model.Booking, error) {
	var booking model.Booking
	err := database.DB.
		Preload("Destination").
		Preload("TicketType").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// CheckoutNotify is the server-to-server notification. Unlike the browser
// return it is the authoritative signal, applied idempotently.
func CheckoutNotify(c *fiber.Ctx) error {
	query, _ := url.ParseQuery(string(c.Body()))

	checkout := NewCheckout()
	result := checkout.VerifyNotify(query)

	if !result.IsSuccess || result.Outcome != "success" {
		return c.JSON(fiber.Map{"RspCode": "01", "Message": "Failed"})
	}

	var session model.CheckoutSession
	if err := database.DB.Where("session_ref = ? AND status != ?", result.SessionRef, model.SessionPaid).First(&session).Error; err != nil {
		// already applied or unknown: acknowledge either way
		return c.JSON(fiber.Map{"RspCode": "00", "Message": "Success"})
	}

	database.DB.Model(&session).Update("status", model.SessionPaid)

	if booking, err := loadBookingById(session.BookingId); err == nil {
		_ = reconcileBooking(booking, "success")
	}

	return c.JSON(fiber.Map{"RspCode": "00", "Message": "Success"})
}
