package services

import (
	"context"

	"github.com/DrewGalowayDev/AIRBNB/models"
)

// BookingStore is the slice of the reservation store the booking workflow
// needs: pre-flight availability, creation, and draft cleanup.
type BookingStore interface {
	// CheckAvailability asks the store whether the apartment is free for
	// [checkIn, checkOut). Dates are calendar days formatted as 2006-01-02.
	CheckAvailability(ctx context.Context, apartmentID, checkIn, checkOut string) (bool, error)
	// CreateBooking inserts the booking. The store re-checks availability
	// before inserting and answers ErrUnavailable if the range was taken
	// between our check and the insert.
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	DeleteDraft(ctx context.Context, userID string) error
}

// ReservationStore is the full remote surface the service consumes. All
// persistence and business-rule arbitration live on the other side of it.
type ReservationStore interface {
	BookingStore

	ListAvailableApartments(ctx context.Context) ([]models.Apartment, error)
	GetApartment(ctx context.Context, apartmentID string) (*models.Apartment, error)

	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	GetBookingStats(ctx context.Context, userID string) (*models.BookingStats, error)

	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error)

	AddFavorite(ctx context.Context, userID, apartmentID string) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, apartmentID string) error
	ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error)
	CountFavorites(ctx context.Context, userID string) (int64, error)

	SaveDraft(ctx context.Context, draft models.BookingDraft) error
	GetDraft(ctx context.Context, userID string) (*models.BookingDraft, error)
}
