package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingEmailData feeds the booking confirmation / cancellation templates
type BookingEmailData struct {
	BookingNumber string
	Destination   string
	TicketName    string
	VisitDate     string
	Quantity      int
	TotalPrice    int64
	VisitorName   string
	PaidAt        string
	CancelledAt   string
}

func smtpDialer() *gomail.Dialer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
}

// SendBookingConfirmationEmail sends the paid-booking email with the e-ticket
// QR embedded inline. Runs async so it never delays the response.
func SendBookingConfirmationEmail(to string, data BookingEmailData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_confirmation.html")
		if err != nil {
			log.Printf("load confirmation template failed: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("render confirmation template failed: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmed #"+data.BookingNumber)
		m.SetBody("text/html", body.String())

		qrBytes, err := GenerateQRCode(data.BookingNumber, 400)
		if err == nil {
			m.Embed("eticket_qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(qrBytes)
				return err
			}), gomail.SetHeader(map[string][]string{
				"Content-Type":        {"image/png"},
				"Content-ID":          {"<eticket_qr>"},
				"Content-Disposition": {"inline"},
			}))
		}

		if err := smtpDialer().DialAndSend(m); err != nil {
			log.Printf("send confirmation email to %s failed: %v", to, err)
		}
	}()
}

// SendBookingCancelledEmail notifies the visitor that the booking was cancelled
func SendBookingCancelledEmail(to string, data BookingEmailData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/booking_cancelled.html")
		if err != nil {
			log.Printf("load cancellation template failed: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("render cancellation template failed: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", os.Getenv("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking cancelled #"+data.BookingNumber)
		m.SetBody("text/html", body.String())

		if err := smtpDialer().DialAndSend(m); err != nil {
			log.Printf("send cancellation email to %s failed: %v", to, err)
		}
	}()
}
