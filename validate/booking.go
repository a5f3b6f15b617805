package validate

import (
	"errors"
	"fmt"

	"wisata_booking/constants"
	"wisata_booking/model"
	"wisata_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking validates the booking input before any database call runs.
// A rejected request creates nothing.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid request body: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if input.Quantity < 1 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.QUANTITY_AT_LEAST_ONE, nil)
		}

		if !input.VisitDate.AfterToday() {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VISIT_DATE_IN_PAST, errors.New("visit date must be strictly after today"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateBookingStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateBookingStatusInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid request body: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if input.Status == nil && input.PaymentStatus == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
