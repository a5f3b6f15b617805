package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	"wisata_booking/model"
)

// Checkout wraps the hosted payment provider. The provider renders its own
// payment page; we only build a signed redirect URL and verify the signed
// parameters it sends back.
type Checkout struct {
	Config model.CheckoutConfig
}

func NewCheckout() *Checkout {
	return &Checkout{
		Config: model.CheckoutConfig{
			MerchantCode: os.Getenv("PAY_MERCHANT_CODE"),
			HashSecret:   os.Getenv("PAY_HASH_SECRET"),
			BaseURL:      os.Getenv("PAY_URL"),
			ReturnURL:    os.Getenv("APP_URL") + "/checkout/return",
			NotifyURL:    os.Getenv("APP_URL") + "/checkout/notify",
		},
	}
}

// BuildCheckoutURL builds the hosted-checkout redirect URL. The session
// expires provider-side after 15 minutes.
func (p *Checkout) BuildCheckoutURL(req model.CheckoutRequest) (string, error) {
	if p.Config.BaseURL == "" || p.Config.HashSecret == "" {
		return "", errors.New("checkout provider is not configured")
	}

	params := url.Values{}
	params.Add("pg_Version", "1.0")
	params.Add("pg_Merchant", p.Config.MerchantCode)
	params.Add("pg_Amount", strconv.FormatInt(req.Amount, 10))
	params.Add("pg_Ref", req.SessionRef)
	params.Add("pg_BookingNumber", req.BookingNumber)
	params.Add("pg_Item", req.Destination+" - "+req.TicketName)
	params.Add("pg_Quantity", strconv.Itoa(req.Quantity))
	params.Add("pg_VisitDate", req.VisitDate)
	params.Add("pg_VisitorName", req.VisitorName)
	params.Add("pg_CreateDate", time.Now().Format("20060102150405"))
	params.Add("pg_ExpireDate", time.Now().Add(15*time.Minute).Format("20060102150405"))
	params.Add("pg_ReturnUrl", p.Config.ReturnURL)
	params.Add("pg_NotifyUrl", p.Config.NotifyURL)

	// Encode sorts keys, so the signature is deterministic
	query := params.Encode()
	hash := p.generateHash(query)
	fullQuery := query + "&pg_Signature=" + hash

	return p.Config.BaseURL + "?" + fullQuery, nil
}

// VerifyReturn checks the signature on the browser return redirect and
// extracts the outcome.
func (p *Checkout) VerifyReturn(query url.Values) model.CheckoutResult {
	signature := query.Get("pg_Signature")
	query.Del("pg_Signature")

	expected := p.generateHash(query.Encode())
	if signature != expected {
		return model.CheckoutResult{IsSuccess: false, Message: "Invalid signature"}
	}

	ref := query.Get("pg_Ref")
	amount, _ := strconv.ParseInt(query.Get("pg_Amount"), 10, 64)

	switch query.Get("pg_Outcome") {
	case "success":
		return model.CheckoutResult{IsSuccess: true, SessionRef: ref, Amount: amount, Outcome: "success"}
	case "cancel":
		return model.CheckoutResult{IsSuccess: true, SessionRef: ref, Amount: amount, Outcome: "cancel"}
	}

	return model.CheckoutResult{IsSuccess: false, SessionRef: ref, Message: "Payment failed"}
}

// VerifyNotify checks the server-to-server notification (same signing scheme)
func (p *Checkout) VerifyNotify(query url.Values) model.CheckoutResult {
	return p.VerifyReturn(query)
}

func (p *Checkout) generateHash(data string) string {
	h := hmac.New(sha512.New, []byte(p.Config.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
