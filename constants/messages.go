package constants

const (
	ERROR_INTERNAL_ERROR = "Internal server error"
	MISSING_LOGIN_INPUT  = "Email and password are required"
	INVALID_EMAIL        = "Email is not registered"
	INVALID_PASSWORD     = "Incorrect password"
	ACCOUNT_NOT_ACTIVE   = "Account is disabled"

	DATA_INPUT_IS_NOT_NUMBER = "Parameter must be a number"

	BOOKING_NOT_FOUND      = "Booking not found"
	BOOKING_NOT_YOURS      = "Booking does not belong to you"
	BOOKING_NOT_PAYABLE    = "Booking can no longer be paid"
	DESTINATION_NOT_FOUND  = "Destination not found"
	TICKET_TYPE_NOT_FOUND  = "Ticket type not found"
	VISIT_DATE_IN_PAST     = "Visit date must be after today"
	QUANTITY_AT_LEAST_ONE  = "Quantity must be at least 1"
	PAYMENT_URL_FAILED     = "Failed to create payment session"
	TICKET_NOT_AVAILABLE   = "E-ticket is only available for paid bookings"
	PROOF_UPLOAD_FAILED    = "Failed to upload payment proof"
	EMAIL_ALREADY_REGISTED = "Email is already registered"
)
