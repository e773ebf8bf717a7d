package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewGalowayDev/AIRBNB/services"
)

func confirmationData() services.ConfirmationEmailData {
	return services.ConfirmationEmailData{
		To:            "akinyi@example.com",
		GuestName:     "Akinyi Odhiambo",
		BookingNumber: "BK-7F3A21C9",
		ApartmentName: "Loft City Apartment",
		CheckIn:       "Mar 10, 2025",
		CheckOut:      "Mar 13, 2025",
		Nights:        3,
		Adults:        2,
		Children:      1,
		TotalAmount:   "KES 15,000.00",
		Year:          2025,
	}
}

func TestBuildConfirmationEmail(t *testing.T) {
	plain, html, err := services.BuildConfirmationEmail(confirmationData())
	require.NoError(t, err)

	for _, body := range []string{plain, html} {
		assert.Contains(t, body, "BK-7F3A21C9")
		assert.Contains(t, body, "Loft City Apartment")
		assert.Contains(t, body, "Mar 10, 2025")
		assert.Contains(t, body, "Mar 13, 2025")
		assert.Contains(t, body, "KES 15,000.00")
		assert.Contains(t, body, "2 Adult(s)")
		assert.Contains(t, body, "1 Child(ren)")
	}
	assert.Contains(t, html, "Booking Confirmed!")
	assert.Contains(t, html, "&copy; 2025 LOFT CITY")
}

func TestBuildConfirmationEmail_OmitsEmptySections(t *testing.T) {
	data := confirmationData()
	data.Children = 0
	data.SpecialRequest = ""

	plain, html, err := services.BuildConfirmationEmail(data)
	require.NoError(t, err)

	assert.NotContains(t, plain, "Child(ren)")
	assert.NotContains(t, html, "Child(ren)")
	assert.NotContains(t, plain, "Special Request")
	assert.NotContains(t, html, "Special Request")
}

func TestBuildConfirmationEmail_EscapesGuestInput(t *testing.T) {
	data := confirmationData()
	data.GuestName = "<script>alert(1)</script>"
	data.SpecialRequest = "Late check-in & a crib <please>"

	_, html, err := services.BuildConfirmationEmail(data)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&amp; a crib")
}

func TestSMTPEmailSender_MockModeWithoutConfig(t *testing.T) {
	sender := &services.SMTPEmailSender{FromName: "LOFT CITY"}
	assert.NoError(t, sender.SendBookingConfirmation(confirmationData()))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "KES 15,000.00", services.FormatCurrency(15000))
	assert.Equal(t, "KES 500.00", services.FormatCurrency(500))
	assert.Equal(t, "KES 1,234,567.50", services.FormatCurrency(1234567.5))
	assert.Equal(t, "KES 0.00", services.FormatCurrency(0))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "Mar 10, 2025", services.FormatDisplayDate(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)))
}
