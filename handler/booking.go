package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateBooking persists a new booking as pending/unpaid. Input validation
// (visitor fields, quantity, future visit date) has already run in the
// validate middleware, so nothing here writes before all checks pass: the
// single insert is atomic from the caller's point of view.
func CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("missing validated input"))
	}

	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || user.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in", nil)
	}

	db := database.DB

	var destination model.Destination
	if err := db.Where("id = ? AND active = true", input.DestinationId).First(&destination).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DESTINATION_NOT_FOUND, err)
	}

	var ticketType model.TicketType
	if err := db.Where("id = ? AND destination_id = ?", input.TicketTypeId, destination.ID).First(&ticketType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_TYPE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking := model.Booking{
		BookingNumber:   helper.GenerateBookingNumber(),
		UserId:          &user.ID,
		DestinationId:   destination.ID,
		TicketTypeId:    ticketType.ID,
		VisitorName:     input.VisitorName,
		VisitorEmail:    input.VisitorEmail,
		VisitorPhone:    input.VisitorPhone,
		Quantity:        input.Quantity,
		UnitPrice:       ticketType.Price,
		TotalPrice:      helper.ComputeTotalPrice(ticketType.Price, input.Quantity),
		VisitDate:       input.VisitDate,
		SpecialRequests: input.SpecialRequests,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentUnpaid,
	}

	if err := db.Create(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create booking", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":            booking.ID,
		"bookingNumber": booking.BookingNumber,
		"totalPrice":    booking.TotalPrice,
		"status":        booking.Status,
		"paymentStatus": booking.PaymentStatus,
		"displayState":  booking.DeriveDisplayState(),
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || user.ID == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please sign in", nil)
	}

	var bookings []model.Booking
	if err := database.DB.
		Preload("Destination").
		Preload("TicketType").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load bookings", err)
	}

	response := []map[string]interface{}{}
	for _, booking := range bookings {
		response = append(response, map[string]interface{}{
			"bookingNumber": booking.BookingNumber,
			"destination":   booking.Destination.Name,
			"location":      booking.Destination.Location,
			"image":         booking.Destination.ImageUrl,
			"ticketName":    booking.TicketType.Name,
			"visitDate":     booking.VisitDate.String(),
			"quantity":      booking.Quantity,
			"totalPrice":    booking.TotalPrice,
			"status":        booking.Status,
			"paymentStatus": booking.PaymentStatus,
			"displayState":  booking.DeriveDisplayState(),
			"createdAt":     booking.CreatedAt,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// findOwnedBooking loads a booking by number and enforces ownership, unless
// the caller is an admin.
func findOwnedBooking(c *fiber.Ctx, bookingNumber string) (*model.Booking, error) {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 || user.ID == 0 {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Please sign in")
	}

	var booking model.Booking
	if err := database.DB.
		Preload("Destination").
		Preload("TicketType").
		Where("booking_number = ?", bookingNumber).
		First(&booking).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, constants.BOOKING_NOT_FOUND)
	}

	if user.Role != model.RoleAdmin && (booking.UserId == nil || *booking.UserId != user.ID) {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.BOOKING_NOT_YOURS)
	}

	return &booking, nil
}

func GetBookingDetail(c *fiber.Ctx) error {
	booking, err := findOwnedBooking(c, c.Params("bookingNumber"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Code, fe.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := map[string]interface{}{
		"bookingNumber":   booking.BookingNumber,
		"destination":     booking.Destination.Name,
		"location":        booking.Destination.Location,
		"image":           booking.Destination.ImageUrl,
		"ticketName":      booking.TicketType.Name,
		"visitorName":     booking.VisitorName,
		"visitorEmail":    booking.VisitorEmail,
		"visitorPhone":    booking.VisitorPhone,
		"visitDate":       booking.VisitDate.String(),
		"quantity":        booking.Quantity,
		"unitPrice":       booking.UnitPrice,
		"totalPrice":      booking.TotalPrice,
		"specialRequests": booking.SpecialRequests,
		"status":          booking.Status,
		"paymentStatus":   booking.PaymentStatus,
		"displayState":    booking.DeriveDisplayState(),
		"paymentProofUrl": booking.PaymentProofUrl,
		"paidAt":          booking.PaidAt,
		"cancelledAt":     booking.CancelledAt,
		"createdAt":       booking.CreatedAt,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GetETicket renders the printable ticket for a paid booking. Read-only: the
// same payload backs the on-screen, print and PDF renderings.
func GetETicket(c *fiber.Ctx) error {
	booking, err := findOwnedBooking(c, c.Params("bookingNumber"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Code, fe.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	state := booking.DeriveDisplayState()
	if state != model.DisplayActiveTicket && state != model.DisplayCompleted {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TICKET_NOT_AVAILABLE, nil)
	}

	ticketCode := helper.TicketCode(booking.BookingNumber)
	qrContent := fmt.Sprintf("%s|%s|%s|%s|%d",
		booking.BookingNumber, booking.VisitorName, booking.Destination.Name,
		booking.VisitDate.String(), booking.Quantity)

	qrBytes, err := utils.GenerateQRCode(qrContent, 400)
	qrBase64 := ""
	if err != nil {
		log.Printf("QR generation failed for booking %s: %v", booking.BookingNumber, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	response := map[string]interface{}{
		"ticketCode":   ticketCode,
		"destination":  booking.Destination.Name,
		"location":     booking.Destination.Location,
		"ticketName":   booking.TicketType.Name,
		"visitorName":  booking.VisitorName,
		"visitDate":    booking.VisitDate.String(),
		"quantity":     booking.Quantity,
		"totalPrice":   booking.TotalPrice,
		"qrCode":       qrBase64,
		"displayState": state,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}
