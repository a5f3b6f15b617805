package handler

import (
	"errors"
	"time"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTransactions lists bookings for the admin dashboard, filtered and paged
func GetTransactions(c *fiber.Ctx) error {
	var input model.FilterBookingInput
	input.Status = c.Query("status")
	input.PaymentStatus = c.Query("paymentStatus")
	input.Search = c.Query("search")
	if limit := c.QueryInt("limit", 0); limit > 0 {
		input.Limit = utils.Ptr(limit)
	}
	if page := c.QueryInt("page", 0); page > 0 {
		input.Page = utils.Ptr(page)
	}

	db := database.DB

	query := db.Model(&model.Booking{}).
		Preload("Destination").
		Preload("TicketType")
	if input.Status != "" {
		query = query.Where("status = ?", input.Status)
	}
	if input.PaymentStatus != "" {
		query = query.Where("payment_status = ?", input.PaymentStatus)
	}
	if input.Search != "" {
		like := "%" + input.Search + "%"
		query = query.Where("booking_number ILIKE ? OR visitor_name ILIKE ? OR visitor_email ILIKE ?", like, like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var bookings []model.Booking
	if err := utils.ApplyPagination(query, input.Limit, input.Page).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := []map[string]interface{}{}
	for _, booking := range bookings {
		rows = append(rows, map[string]interface{}{
			"bookingNumber": booking.BookingNumber,
			"destination":   booking.Destination.Name,
			"ticketName":    booking.TicketType.Name,
			"visitorName":   booking.VisitorName,
			"visitorEmail":  booking.VisitorEmail,
			"visitDate":     booking.VisitDate.String(),
			"quantity":      booking.Quantity,
			"totalPrice":    booking.TotalPrice,
			"status":        booking.Status,
			"paymentStatus": booking.PaymentStatus,
			"displayState":  booking.DeriveDisplayState(),
			"createdAt":     booking.CreatedAt,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}

// GetProofQueue lists bookings whose payment proof awaits review
func GetProofQueue(c *fiber.Ctx) error {
	var bookings []model.Booking
	if err := database.DB.
		Preload("Destination").
		Preload("TicketType").
		Where("payment_status = ?", model.PaymentWaitingConfirmation).
		Order("updated_at asc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := []map[string]interface{}{}
	for _, booking := range bookings {
		rows = append(rows, map[string]interface{}{
			"bookingNumber":   booking.BookingNumber,
			"destination":     booking.Destination.Name,
			"visitorName":     booking.VisitorName,
			"totalPrice":      booking.TotalPrice,
			"paymentProofUrl": booking.PaymentProofUrl,
			"uploadedAt":      booking.UpdatedAt,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// ConfirmPaymentProof approves a reviewed proof: the booking becomes
// paid/confirmed exactly as if the hosted checkout had succeeded.
func ConfirmPaymentProof(c *fiber.Ctx) error {
	bookingNumber := c.Params("bookingNumber")

	booking, err := loadBookingByNumber(bookingNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if booking.PaymentStatus != model.PaymentWaitingConfirmation {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking has no proof awaiting review", nil)
	}

	if err := helper.MarkPaid(database.DB, booking); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
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

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber": booking.BookingNumber,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
	})
}

// RejectPaymentProof sends the booking back to unpaid so the visitor can
// retry either payment path.
func RejectPaymentProof(c *fiber.Ctx) error {
	bookingNumber := c.Params("bookingNumber")

	booking, err := loadBookingByNumber(bookingNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if err := helper.MarkProofRejected(database.DB, booking); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber": booking.BookingNumber,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
	})
}

// UpdateBookingStatus lets an admin move either axis directly, still through
// the central transition helpers so the pairing invariant holds.
func UpdateBookingStatus(c *fiber.Ctx) error {
	bookingNumber := c.Params("bookingNumber")
	input, ok := c.Locals("input").(model.UpdateBookingStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	booking, err := loadBookingByNumber(bookingNumber)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	db := database.DB

	if input.PaymentStatus != nil {
		switch *input.PaymentStatus {
		case model.PaymentPaid:
			if err := helper.MarkPaid(db, booking); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		case model.PaymentWaitingConfirmation:
			if err := helper.MarkWaitingConfirmation(db, booking, booking.PaymentProofUrl); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		case model.PaymentUnpaid:
			if err := db.Model(booking).Update("payment_status", model.PaymentUnpaid).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			booking.PaymentStatus = model.PaymentUnpaid
			helper.PublishBookingStatus(booking)
		}
	}

	if input.Status != nil {
		switch *input.Status {
		case model.StatusCancelled:
			if err := helper.MarkCancelled(db, booking); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		case model.StatusCompleted:
			if err := helper.MarkCompleted(db, booking); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
			}
		case model.StatusConfirmed, model.StatusPending:
			if err := db.Model(booking).Update("status", *input.Status).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
			booking.Status = *input.Status
			helper.PublishBookingStatus(booking)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber": booking.BookingNumber,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
	})
}

// GetAdminStats backs the dashboard summary cards
func GetAdminStats(c *fiber.Ctx) error {
	db := database.DB

	var totalBookings, paidBookings, pendingProofs int64
	var revenue int64

	db.Model(&model.Booking{}).Count(&totalBookings)
	db.Model(&model.Booking{}).Where("payment_status = ?", model.PaymentPaid).Count(&paidBookings)
	db.Model(&model.Booking{}).Where("payment_status = ?", model.PaymentWaitingConfirmation).Count(&pendingProofs)
	db.Model(&model.Booking{}).
		Where("payment_status = ?", model.PaymentPaid).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalBookings": totalBookings,
		"paidBookings":  paidBookings,
		"pendingProofs": pendingProofs,
		"revenue":       revenue,
	})
}
