package models

// BookingStats mirrors the store's user_booking_stats view.
type BookingStats struct {
	UserID            string `json:"user_id,omitempty" db:"user_id"`
	TotalBookings     int    `json:"total_bookings" db:"total_bookings"`
	PendingBookings   int    `json:"pending_bookings" db:"pending_bookings"`
	ConfirmedBookings int    `json:"confirmed_bookings" db:"confirmed_bookings"`
	CompletedBookings int    `json:"completed_bookings" db:"completed_bookings"`
	CancelledBookings int    `json:"cancelled_bookings" db:"cancelled_bookings"`
}

// Dashboard is the aggregate payload for the dashboard page.
type Dashboard struct {
	Profile        Profile      `json:"profile"`
	Stats          BookingStats `json:"stats"`
	Bookings       []Booking    `json:"bookings"`
	FavoritesCount int64        `json:"favorites_count"`
}
