package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/DrewGalowayDev/AIRBNB/config"
)

// EmailSender delivers booking confirmation emails.
type EmailSender interface {
	SendBookingConfirmation(data ConfirmationEmailData) error
}

// ConfirmationEmailData feeds the confirmation templates. Amounts and dates
// arrive pre-formatted for display.
type ConfirmationEmailData struct {
	To             string
	GuestName      string
	BookingNumber  string
	ApartmentName  string
	CheckIn        string
	CheckOut       string
	Nights         int
	Adults         int
	Children       int
	TotalAmount    string
	SpecialRequest string
	Year           int
}

// SMTPEmailSender sends multipart plain+HTML mail. When the SMTP settings are
// absent it logs the email instead of failing, which keeps local development
// working without a mail account.
type SMTPEmailSender struct {
	Host     string
	Port     string
	Username string
	Password string
	FromName string
}

func NewSMTPEmailSender(cfg *config.Config) *SMTPEmailSender {
	return &SMTPEmailSender{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
	}
}

func (s *SMTPEmailSender) configured() bool {
	return s.Host != "" && s.Port != "" && s.Username != "" && s.Password != ""
}

func (s *SMTPEmailSender) SendBookingConfirmation(data ConfirmationEmailData) error {
	plainBody, htmlBody, err := BuildConfirmationEmail(data)
	if err != nil {
		return err
	}

	if !s.configured() {
		log.Printf("[MOCK EMAIL] confirmation to:%s booking:%s total:%s", data.To, data.BookingNumber, data.TotalAmount)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", s.FromName, s.Username)
	subject := fmt.Sprintf("Booking Confirmed - %s", data.BookingNumber)
	boundary := "----=_BOOKING_EMAIL_BOUNDARY"

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + data.To + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: multipart/alternative; boundary=\"" + boundary + "\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(plainBody + "\r\n")
	msg.WriteString("--" + boundary + "\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody + "\r\n")
	msg.WriteString("--" + boundary + "--\r\n")

	auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)
	return smtp.SendMail(addr, auth, s.Username, []string{data.To}, []byte(msg.String()))
}

// FormatDisplayDate renders a calendar day the way the site shows it,
// e.g. "Mar 10, 2025".
func FormatDisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatCurrency renders an amount in Kenyan shillings with thousands
// grouping, e.g. "KES 15,000.00".
func FormatCurrency(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("KES %s%s.%s", sign, grouped.String(), parts[1])
}
