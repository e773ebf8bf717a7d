package models

import "time"

// Booking statuses as stored by the reservation store.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID             string     `json:"id" db:"id"`
	BookingNumber  string     `json:"booking_number" db:"booking_number"`
	UserID         *string    `json:"user_id,omitempty" db:"user_id"`
	ApartmentID    string     `json:"apartment_id" db:"apartment_id"`
	FirstName      string     `json:"first_name" db:"first_name"`
	LastName       string     `json:"last_name" db:"last_name"`
	Email          string     `json:"email" db:"email"`
	Phone          string     `json:"phone" db:"phone"`
	CheckIn        string     `json:"check_in" db:"check_in"`
	CheckOut       string     `json:"check_out" db:"check_out"`
	Adults         int        `json:"adults" db:"adults"`
	Children       int        `json:"children" db:"children"`
	PricePerNight  float64    `json:"price_per_night" db:"price_per_night"`
	TotalNights    int        `json:"total_nights" db:"total_nights"`
	TotalAmount    float64    `json:"total_amount" db:"total_amount"`
	SpecialRequest *string    `json:"special_request,omitempty" db:"special_request"`
	Status         string     `json:"status" db:"status"`
	Apartment      *Apartment `json:"apartments,omitempty"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// StayRequest is one submission attempt of the booking form. It is built
// fresh per attempt and discarded once the attempt resolves.
type StayRequest struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CheckIn        time.Time
	CheckOut       time.Time
	Adults         int
	Children       int
	SpecialRequest string
	// CallerID is set for signed-in users and nil for guest bookings.
	CallerID *string
}

// BookingInput is the creation payload handed to the reservation store.
type BookingInput struct {
	UserID         *string
	ApartmentID    string
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CheckIn        string
	CheckOut       string
	Adults         int
	Children       int
	PricePerNight  float64
	TotalNights    int
	TotalAmount    float64
	SpecialRequest *string
}

// BookingConfirmation is the view-model rendered after a confirmed booking.
// Nights and total amount are the locally computed values, not store echoes.
type BookingConfirmation struct {
	BookingNumber string  `json:"booking_number"`
	ApartmentName string  `json:"apartment_name"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Adults        int     `json:"adults"`
	Children      int     `json:"children"`
	Nights        int     `json:"nights"`
	TotalAmount   float64 `json:"total_amount"`
	GuestEmail    string  `json:"guest_email"`
}

type CreateBookingRequest struct {
	ApartmentID    string `json:"apartment_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Adults         int    `json:"adults"`
	Children       int    `json:"children"`
	SpecialRequest string `json:"special_request"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
