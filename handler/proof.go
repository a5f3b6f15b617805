package handler

import (
	"errors"
	"fmt"

	"wisata_booking/constants"
	"wisata_booking/database"
	"wisata_booking/helper"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadPaymentProof is the manual payment path: the visitor uploads a
// transfer receipt instead of going through the hosted checkout. The booking
// moves to waiting_confirmation until an admin reviews it; there is no
// automatic reconciliation on this path.
func UploadPaymentProof(c *fiber.Ctx) error {
	booking, err := findOwnedBooking(c, c.Params("bookingNumber"))
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Code, fe.Message, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.Status == model.StatusCancelled {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_PAYABLE, nil)
	}
	if booking.PaymentStatus == model.PaymentPaid {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_NOT_PAYABLE, nil)
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Proof file is required", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot open uploaded file", err)
	}
	defer file.Close()

	url, err := helper.UploadFile(file, "payment-proofs", fmt.Sprintf("proof_%s", booking.BookingNumber))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.PROOF_UPLOAD_FAILED, err)
	}

	if err := helper.MarkWaitingConfirmation(database.DB, booking, url); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookingNumber":   booking.BookingNumber,
		"paymentStatus":   booking.PaymentStatus,
		"paymentProofUrl": booking.PaymentProofUrl,
		"displayState":    booking.DeriveDisplayState(),
	})
}
