package handler

import (
	"net/url"
	"strings"
	"testing"

	"wisata_booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCheckout() *Checkout {
	return &Checkout{
		Config: model.CheckoutConfig{
			MerchantCode: "WISATA01",
			HashSecret:   "test-secret",
			BaseURL:      "https://pay.example.com/checkout",
			ReturnURL:    "https://booking.example.com/checkout/return",
			NotifyURL:    "https://booking.example.com/checkout/notify",
		},
	}
}

func testCheckoutRequest() model.CheckoutRequest {
	return model.CheckoutRequest{
		SessionRef:    "3f0c9a7e-9a37-4c7b-9d2f-1f7bb1f1e100",
		BookingNumber: "BK-1756700000000",
		Amount:        100000,
		Destination:   "Pantai Pandawa",
		TicketName:    "Regular",
		Quantity:      2,
		VisitDate:     "2026-09-15",
		VisitorName:   "Budi Santoso",
	}
}

func TestBuildCheckoutURL(t *testing.T) {
	t.Run("builds a signed redirect URL", func(t *testing.T) {
		p := testCheckout()

		redirect, err := p.BuildCheckoutURL(testCheckoutRequest())
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(redirect, p.Config.BaseURL+"?"))

		parsed, err := url.Parse(redirect)
		require.NoError(t, err)
		query := parsed.Query()

		assert.Equal(t, "WISATA01", query.Get("pg_Merchant"))
		assert.Equal(t, "100000", query.Get("pg_Amount"))
		assert.Equal(t, "BK-1756700000000", query.Get("pg_BookingNumber"))
		assert.Equal(t, "Pantai Pandawa - Regular", query.Get("pg_Item"))
		assert.Equal(t, "2", query.Get("pg_Quantity"))
		assert.Equal(t, p.Config.ReturnURL, query.Get("pg_ReturnUrl"))
		assert.Equal(t, p.Config.NotifyURL, query.Get("pg_NotifyUrl"))

		// The signature must cover every other parameter
		signature := query.Get("pg_Signature")
		require.NotEmpty(t, signature)
		query.Del("pg_Signature")
		assert.Equal(t, p.generateHash(query.Encode()), signature)
	})

	t.Run("fails when the provider is not configured", func(t *testing.T) {
		p := &Checkout{}

		_, err := p.BuildCheckoutURL(testCheckoutRequest())
		assert.Error(t, err)
	})
}

func TestVerifyReturn(t *testing.T) {
	p := testCheckout()

	signedQuery := func(outcome string) url.Values {
		query := url.Values{}
		query.Add("pg_Ref", "3f0c9a7e-9a37-4c7b-9d2f-1f7bb1f1e100")
		query.Add("pg_Amount", "100000")
		query.Add("pg_BookingNumber", "BK-1756700000000")
		query.Add("pg_Outcome", outcome)
		query.Add("pg_Signature", p.generateHash(query.Encode()))
		return query
	}

	t.Run("accepts a signed success", func(t *testing.T) {
		result := p.VerifyReturn(signedQuery("success"))

		assert.True(t, result.IsSuccess)
		assert.Equal(t, "success", result.Outcome)
		assert.Equal(t, "3f0c9a7e-9a37-4c7b-9d2f-1f7bb1f1e100", result.SessionRef)
		assert.Equal(t, int64(100000), result.Amount)
	})

	t.Run("accepts a signed cancel", func(t *testing.T) {
		result := p.VerifyReturn(signedQuery("cancel"))

		assert.True(t, result.IsSuccess)
		assert.Equal(t, "cancel", result.Outcome)
	})

	t.Run("rejects a tampered amount", func(t *testing.T) {
		query := signedQuery("success")
		query.Set("pg_Amount", "1")

		result := p.VerifyReturn(query)

		assert.False(t, result.IsSuccess)
		assert.Equal(t, "Invalid signature", result.Message)
	})

	t.Run("rejects a forged signature", func(t *testing.T) {
		query := signedQuery("success")
		query.Set("pg_Signature", "deadbeef")

		result := p.VerifyReturn(query)

		assert.False(t, result.IsSuccess)
	})

	t.Run("unknown outcome is a failure", func(t *testing.T) {
		result := p.VerifyReturn(signedQuery("error"))

		assert.False(t, result.IsSuccess)
		assert.Equal(t, "Payment failed", result.Message)
	})
}
