package services

import (
	"fmt"
	"html/template"
	"strings"
)

// The HTML body mirrors the confirmation email the site sends: gradient
// header, booking detail rows, boxed total, contact block, footer.
// html/template escapes the guest-supplied fields.
const confirmationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Booking Confirmation</title>
<style>
body { margin: 0; padding: 0; font-family: 'Arial', sans-serif; background-color: #f4f4f4; }
.email-container { max-width: 600px; margin: 20px auto; background: white; border-radius: 10px; overflow: hidden; }
.header { background: linear-gradient(135deg, #00CED1 0%, #20B2AA 100%); padding: 30px; text-align: center; color: white; }
.header h1 { margin: 0; font-size: 28px; }
.content { padding: 30px; }
.booking-info { background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0; }
.booking-row { display: flex; justify-content: space-between; padding: 10px 0; border-bottom: 1px solid #e0e0e0; }
.booking-row:last-child { border-bottom: none; }
.label { font-weight: bold; color: #666; }
.value { color: #333; }
.total { background: white; padding: 15px; border-radius: 8px; margin-top: 10px; text-align: center; border: 2px solid #00CED1; }
.total-amount { font-size: 32px; color: #00CED1; font-weight: bold; }
.contact-info { margin: 20px 0; padding: 15px; background: #e8f8f8; border-left: 4px solid #00CED1; border-radius: 4px; }
.footer { background: #f8f9fa; padding: 20px; text-align: center; color: #666; font-size: 14px; }
</style>
</head>
<body>
<div class="email-container">
  <div class="header">
    <div style="font-size: 48px; margin-bottom: 10px;">&#10003;</div>
    <h1>Booking Confirmed!</h1>
    <p style="margin: 10px 0 0 0; font-size: 16px;">Your stay is confirmed at LOFT CITY</p>
  </div>
  <div class="content">
    <h2 style="color: #333; margin-top: 0;">Hello {{.GuestName}},</h2>
    <p style="color: #666; line-height: 1.6;">
      Thank you for choosing LOFT CITY! We're excited to host you at our beautiful apartment in Kisumu.
      Your booking has been successfully confirmed.
    </p>
    <div class="booking-info">
      <h3 style="margin-top: 0; color: #222; border-bottom: 2px solid #00CED1; padding-bottom: 10px;">Booking Details</h3>
      <div class="booking-row"><span class="label">Booking Number:</span><span class="value" style="color: #00CED1; font-weight: bold;">{{.BookingNumber}}</span></div>
      <div class="booking-row"><span class="label">Apartment:</span><span class="value">{{.ApartmentName}}</span></div>
      <div class="booking-row"><span class="label">Check-in Date:</span><span class="value">{{.CheckIn}}</span></div>
      <div class="booking-row"><span class="label">Check-out Date:</span><span class="value">{{.CheckOut}}</span></div>
      <div class="booking-row"><span class="label">Total Nights:</span><span class="value">{{.Nights}}</span></div>
      <div class="booking-row"><span class="label">Guests:</span><span class="value">{{.Adults}} Adult(s){{if gt .Children 0}}, {{.Children}} Child(ren){{end}}</span></div>
      {{if .SpecialRequest}}<div class="booking-row"><span class="label">Special Request:</span><span class="value">{{.SpecialRequest}}</span></div>{{end}}
      <div class="total">
        <div style="font-size: 14px; color: #666; margin-bottom: 5px;">Total Amount</div>
        <div class="total-amount">{{.TotalAmount}}</div>
      </div>
    </div>
    <div class="contact-info">
      <strong style="color: #00CED1;">Location:</strong> Kisumu, Kenya<br>
      <strong style="color: #00CED1;">Phone:</strong> +254 722 349 029<br>
      <strong style="color: #00CED1;">Email:</strong> info@loftcity.com
    </div>
    <div style="text-align: center;">
      <p style="color: #666;"><strong>Check-in Time:</strong> 2:00 PM<br><strong>Check-out Time:</strong> 11:00 AM</p>
    </div>
  </div>
  <div class="footer">
    <p style="margin: 10px 0;">If you have any questions or need to modify your booking, please contact us.</p>
    <p style="margin: 10px 0;"><strong>LOFT CITY</strong><br>Kisumu, Kenya<br>Phone: +254 722 349 029</p>
    <p style="margin: 20px 0 10px 0; font-size: 12px; color: #999;">&copy; {{.Year}} LOFT CITY. All rights reserved.</p>
  </div>
</div>
</body>
</html>
`

var confirmationTemplate = template.Must(template.New("booking_confirmation").Parse(confirmationEmailHTML))

// BuildConfirmationEmail renders the plain-text and HTML bodies for a
// confirmation email.
func BuildConfirmationEmail(data ConfirmationEmailData) (plainBody, htmlBody string, err error) {
	var html strings.Builder
	if err := confirmationTemplate.Execute(&html, data); err != nil {
		return "", "", err
	}

	var plain strings.Builder
	fmt.Fprintf(&plain, "Hello %s,\n\n", data.GuestName)
	plain.WriteString("Your booking at LOFT CITY has been confirmed.\n\n")
	fmt.Fprintf(&plain, "Booking Number: %s\n", data.BookingNumber)
	fmt.Fprintf(&plain, "Apartment: %s\n", data.ApartmentName)
	fmt.Fprintf(&plain, "Check-in: %s (2:00 PM)\n", data.CheckIn)
	fmt.Fprintf(&plain, "Check-out: %s (11:00 AM)\n", data.CheckOut)
	fmt.Fprintf(&plain, "Total Nights: %d\n", data.Nights)
	fmt.Fprintf(&plain, "Guests: %d Adult(s)", data.Adults)
	if data.Children > 0 {
		fmt.Fprintf(&plain, ", %d Child(ren)", data.Children)
	}
	plain.WriteString("\n")
	if data.SpecialRequest != "" {
		fmt.Fprintf(&plain, "Special Request: %s\n", data.SpecialRequest)
	}
	fmt.Fprintf(&plain, "Total Amount: %s\n\n", data.TotalAmount)
	plain.WriteString("LOFT CITY, Kisumu, Kenya\nPhone: +254 722 349 029\n")

	return plain.String(), html.String(), nil
}
