package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/DrewGalowayDev/AIRBNB/models"
)

// SupabaseStore implements ReservationStore against a hosted Supabase
// project. Every call runs under a single configurable timeout; a blown
// deadline surfaces as ErrStoreTimeout.
type SupabaseStore struct {
	client  *supa.Client
	timeout time.Duration
}

func NewSupabaseStore(client *supa.Client, timeout time.Duration) *SupabaseStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SupabaseStore{client: client, timeout: timeout}
}

func (s *SupabaseStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *SupabaseStore) wrapErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrStoreTimeout
	}
	return err
}

// =====================================================
// APARTMENTS
// =====================================================

func (s *SupabaseStore) ListAvailableApartments(ctx context.Context) ([]models.Apartment, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("apartments").
		Select("*", "", false).
		Eq("is_available", "true").
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var apartments []models.Apartment
	if err := json.Unmarshal(data, &apartments); err != nil {
		return nil, err
	}
	return apartments, nil
}

func (s *SupabaseStore) GetApartment(ctx context.Context, apartmentID string) (*models.Apartment, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("apartments").
		Select("*", "", false).
		Eq("id", apartmentID).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var apartments []models.Apartment
	if err := json.Unmarshal(data, &apartments); err != nil {
		return nil, err
	}
	if len(apartments) == 0 {
		return nil, fmt.Errorf("apartment %s not found", apartmentID)
	}
	return &apartments[0], nil
}

// =====================================================
// AVAILABILITY AND BOOKINGS
// =====================================================

// CheckAvailability calls the check_apartment_availability stored procedure.
// The supabase client's Rpc helper takes no context, so the call runs in a
// goroutine and the deadline is enforced here.
func (s *SupabaseStore) CheckAvailability(ctx context.Context, apartmentID, checkIn, checkOut string) (bool, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	resultCh := make(chan string, 1)
	go func() {
		resultCh <- s.client.Rpc("check_apartment_availability", "", map[string]interface{}{
			"p_apartment_id": apartmentID,
			"p_check_in":     checkIn,
			"p_check_out":    checkOut,
		})
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return false, ErrStoreTimeout
		}
		return false, ctx.Err()
	case raw := <-resultCh:
		available, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return false, fmt.Errorf("check_apartment_availability returned %q", raw)
		}
		return available, nil
	}
}

func (s *SupabaseStore) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	bookingData := map[string]interface{}{
		"booking_number":  newBookingNumber(),
		"user_id":         input.UserID, // nil for guest bookings
		"apartment_id":    input.ApartmentID,
		"first_name":      input.FirstName,
		"last_name":       input.LastName,
		"email":           input.Email,
		"phone":           input.Phone,
		"check_in":        input.CheckIn,
		"check_out":       input.CheckOut,
		"adults":          input.Adults,
		"children":        input.Children,
		"price_per_night": input.PricePerNight,
		"total_nights":    input.TotalNights,
		"total_amount":    input.TotalAmount,
		"special_request": input.SpecialRequest,
		"status":          models.BookingStatusPending,
	}

	data, _, err := s.client.From("bookings").
		Insert(bookingData, false, "", "", "").
		ExecuteWithContext(ctx)
	if err != nil {
		err = s.wrapErr(ctx, err)
		// The store re-validates availability in a before-insert trigger and
		// raises "not available" when the range was taken meanwhile.
		if !errors.Is(err, ErrStoreTimeout) && strings.Contains(strings.ToLower(err.Error()), "not available") {
			return nil, ErrUnavailable
		}
		return nil, err
	}

	var created []models.Booking
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errors.New("no booking returned from insert")
	}
	return &created[0], nil
}

func (s *SupabaseStore) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("bookings").
		Select("*, apartments (*)", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *SupabaseStore) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("bookings").
		Select("*, apartments (*)", "", false).
		Eq("id", bookingID).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return &bookings[0], nil
}

func (s *SupabaseStore) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("bookings").
		Update(map[string]interface{}{"status": status}, "", "").
		Eq("id", bookingID).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var updated []models.Booking
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return &updated[0], nil
}

// GetBookingStats reads the user_booking_stats view. A fetch fault falls back
// to zero stats so a brand-new user sees an empty dashboard instead of an
// error; the fault itself is logged.
func (s *SupabaseStore) GetBookingStats(ctx context.Context, userID string) (*models.BookingStats, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("user_booking_stats").
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteWithContext(ctx)
	if err != nil {
		log.Printf("[SupabaseStore] Warning: booking stats fetch failed for user %s: %v", userID, err)
		return &models.BookingStats{UserID: userID}, nil
	}

	var stats []models.BookingStats
	if err := json.Unmarshal(data, &stats); err != nil || len(stats) == 0 {
		return &models.BookingStats{UserID: userID}, nil
	}
	return &stats[0], nil
}

// =====================================================
// PROFILES
// =====================================================

func (s *SupabaseStore) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return s.findProfile(ctx, "id", userID)
}

func (s *SupabaseStore) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.findProfile(ctx, "email", email)
}

func (s *SupabaseStore) findProfile(ctx context.Context, column, value string) (*models.Profile, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("profiles").
		Select("*", "", false).
		Eq(column, value).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var profiles []models.Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (s *SupabaseStore) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	profileData := map[string]interface{}{
		"id":            profile.ID,
		"full_name":     profile.FullName,
		"email":         profile.Email,
		"phone":         profile.Phone,
		"password_hash": profile.PasswordHash,
	}
	if profile.Location != nil && *profile.Location != "" {
		profileData["location"] = *profile.Location
	}

	data, _, err := s.client.From("profiles").
		Insert(profileData, false, "", "", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var created []models.Profile
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errors.New("no profile returned from insert")
	}
	return &created[0], nil
}

func (s *SupabaseStore) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) (*models.Profile, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("profiles").
		Update(updates, "", "").
		Eq("id", userID).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var updated []models.Profile
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("profile %s not found", userID)
	}
	return &updated[0], nil
}

// =====================================================
// FAVORITES
// =====================================================

func (s *SupabaseStore) AddFavorite(ctx context.Context, userID, apartmentID string) (*models.Favorite, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("favorites").
		Insert(map[string]interface{}{
			"user_id":      userID,
			"apartment_id": apartmentID,
		}, false, "", "", "").
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var created []models.Favorite
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, errors.New("no favorite returned from insert")
	}
	return &created[0], nil
}

func (s *SupabaseStore) RemoveFavorite(ctx context.Context, userID, apartmentID string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	_, _, err := s.client.From("favorites").
		Delete("", "").
		Eq("user_id", userID).
		Eq("apartment_id", apartmentID).
		ExecuteWithContext(ctx)
	return s.wrapErr(ctx, err)
}

func (s *SupabaseStore) ListFavorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("favorites").
		Select("*, apartments (*)", "", false).
		Eq("user_id", userID).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var favorites []models.Favorite
	if err := json.Unmarshal(data, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (s *SupabaseStore) CountFavorites(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	_, count, err := s.client.From("favorites").
		Select("id", "exact", true).
		Eq("user_id", userID).
		ExecuteWithContext(ctx)
	if err != nil {
		return 0, s.wrapErr(ctx, err)
	}
	return count, nil
}

// =====================================================
// BOOKING DRAFTS
// =====================================================

func (s *SupabaseStore) SaveDraft(ctx context.Context, draft models.BookingDraft) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	draftData := map[string]interface{}{
		"user_id":         draft.UserID,
		"first_name":      draft.FirstName,
		"last_name":       draft.LastName,
		"email":           draft.Email,
		"phone":           draft.Phone,
		"check_in":        draft.CheckIn,
		"check_out":       draft.CheckOut,
		"adults":          draft.Adults,
		"children":        draft.Children,
		"special_request": draft.SpecialRequest,
	}

	_, _, err := s.client.From("booking_drafts").
		Insert(draftData, true, "user_id", "", "").
		ExecuteWithContext(ctx)
	return s.wrapErr(ctx, err)
}

func (s *SupabaseStore) GetDraft(ctx context.Context, userID string) (*models.BookingDraft, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	data, _, err := s.client.From("booking_drafts").
		Select("*", "", false).
		Eq("user_id", userID).
		ExecuteWithContext(ctx)
	if err != nil {
		return nil, s.wrapErr(ctx, err)
	}

	var drafts []models.BookingDraft
	if err := json.Unmarshal(data, &drafts); err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, nil
	}
	return &drafts[0], nil
}

func (s *SupabaseStore) DeleteDraft(ctx context.Context, userID string) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	_, _, err := s.client.From("booking_drafts").
		Delete("", "").
		Eq("user_id", userID).
		ExecuteWithContext(ctx)
	return s.wrapErr(ctx, err)
}

// newBookingNumber builds the human-readable reference shown on
// confirmations, e.g. BK-7F3A21C9.
func newBookingNumber() string {
	return "BK-" + strings.ToUpper(uuid.New().String()[:8])
}
