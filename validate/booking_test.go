package validate

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wisata_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingTestApp(reached *bool) *fiber.App {
	app := fiber.New()
	app.Post("/bookings", CreateBooking(), func(c *fiber.Ctx) error {
		*reached = true
		input := c.Locals("input").(model.CreateBookingInput)
		return c.JSON(input)
	})
	return app
}

func bookingBody(quantity int, visitDate string) string {
	return fmt.Sprintf(`{
		"destinationId": 1,
		"ticketTypeId": 1,
		"visitorName": "Budi Santoso",
		"visitorEmail": "budi@example.com",
		"quantity": %d,
		"visitDate": "%s"
	}`, quantity, visitDate)
}

func postBooking(t *testing.T, app *fiber.App, body string) int {
	req := httptest.NewRequest("POST", "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode
}

func TestCreateBookingValidation(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	t.Run("valid input reaches the handler", func(t *testing.T) {
		var reached bool
		app := bookingTestApp(&reached)

		status := postBooking(t, app, bookingBody(2, tomorrow))
		assert.Equal(t, fiber.StatusOK, status)
		assert.True(t, reached)
	})

	t.Run("zero quantity is rejected before the handler", func(t *testing.T) {
		var reached bool
		app := bookingTestApp(&reached)

		status := postBooking(t, app, bookingBody(0, tomorrow))
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, reached)
	})

	t.Run("visit date today is rejected", func(t *testing.T) {
		var reached bool
		app := bookingTestApp(&reached)

		status := postBooking(t, app, bookingBody(2, today))
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, reached)
	})

	t.Run("visit date in the past is rejected", func(t *testing.T) {
		var reached bool
		app := bookingTestApp(&reached)

		status := postBooking(t, app, bookingBody(2, yesterday))
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, reached)
	})

	t.Run("missing visitor email is rejected", func(t *testing.T) {
		var reached bool
		app := bookingTestApp(&reached)

		body := fmt.Sprintf(`{
			"destinationId": 1,
			"ticketTypeId": 1,
			"visitorName": "Budi Santoso",
			"quantity": 2,
			"visitDate": "%s"
		}`, tomorrow)

		status := postBooking(t, app, body)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, reached)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		var reached bool
		app := bookingTestApp(&reached)

		status := postBooking(t, app, `{"quantity": "two"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, reached)
	})
}
