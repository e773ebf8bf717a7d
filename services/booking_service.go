package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/DrewGalowayDev/AIRBNB/models"
)

// SubmissionState tracks a single submission attempt through the booking
// workflow. Every failure path returns the attempt to StateIdle.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateValidating
	StateCheckingAvailability
	StateCreating
	StateConfirmed
)

func (s SubmissionState) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateCheckingAvailability:
		return "checking_availability"
	case StateCreating:
		return "creating"
	case StateConfirmed:
		return "confirmed"
	default:
		return "idle"
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// BookingService turns a raw stay request into a confirmed booking: local
// validation, a pre-flight availability check, then creation. The pre-flight
// check only saves a round trip; the store re-checks before inserting and is
// the final arbiter, so a race between check and create is accepted and
// surfaces as ErrUnavailable.
type BookingService struct {
	store      BookingStore
	mailer     EmailSender
	accumulate bool
	now        func() time.Time

	mu       sync.Mutex
	inFlight map[string]SubmissionState
}

func NewBookingService(store BookingStore, mailer EmailSender) *BookingService {
	return &BookingService{
		store:    store,
		mailer:   mailer,
		now:      time.Now,
		inFlight: map[string]SubmissionState{},
	}
}

// WithAccumulatedValidation switches SubmitBooking to report every failing
// validation rule instead of only the first one.
func (s *BookingService) WithAccumulatedValidation() *BookingService {
	s.accumulate = true
	return s
}

// AttemptState reports where the submission keyed by attemptKey currently is.
func (s *BookingService) AttemptState(attemptKey string) SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[attemptKey]
}

func (s *BookingService) beginAttempt(attemptKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[attemptKey]; busy {
		return false
	}
	s.inFlight[attemptKey] = StateValidating
	return true
}

func (s *BookingService) setState(attemptKey string, state SubmissionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight[attemptKey] = state
}

func (s *BookingService) endAttempt(attemptKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, attemptKey)
}

// ValidateStayRequest checks the request against the unit, in order: names,
// email, phone, dates present, date range, adult count, guest capacity. Rules
// short-circuit, so the returned error names only the first failing rule.
// Pure: the same input always yields the same result.
func (s *BookingService) ValidateStayRequest(req models.StayRequest, unit *models.Apartment, today time.Time) *ValidationError {
	messages := validationMessages(req, unit, today, true)
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

// ValidateStayRequestAll is the accumulating variant: every failing rule, in
// rule order.
func (s *BookingService) ValidateStayRequestAll(req models.StayRequest, unit *models.Apartment, today time.Time) *ValidationError {
	messages := validationMessages(req, unit, today, false)
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}

func validationMessages(req models.StayRequest, unit *models.Apartment, today time.Time, shortCircuit bool) []string {
	var messages []string
	fail := func(msg string) bool {
		messages = append(messages, msg)
		return shortCircuit
	}

	if req.FirstName == "" || req.LastName == "" {
		if fail("Please enter your first and last name") {
			return messages
		}
	}
	if req.Email == "" || !emailPattern.MatchString(req.Email) {
		if fail("Please enter a valid email address") {
			return messages
		}
	}
	if req.Phone == "" {
		if fail("Please enter your mobile number") {
			return messages
		}
	}
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		if fail("Please select check-in and check-out dates") {
			return messages
		}
	} else {
		switch err := ValidateRange(req.CheckIn, req.CheckOut, today); {
		case errors.Is(err, ErrPastCheckIn):
			if fail("Check-in date cannot be in the past") {
				return messages
			}
		case errors.Is(err, ErrInvertedRange):
			if fail("Check-out date must be after check-in date") {
				return messages
			}
		}
	}
	if req.Adults < 1 {
		if fail("At least one adult is required") {
			return messages
		}
	}
	if unit != nil && req.Adults+req.Children > unit.MaxGuests {
		if fail(fmt.Sprintf("Maximum %d guests allowed for this apartment", unit.MaxGuests)) {
			return messages
		}
	}
	return messages
}

// SubmitBooking runs the full workflow for one attempt. attemptKey identifies
// the submitting session; while an attempt is in flight the same key is
// rejected with ErrSubmissionInFlight, the server-side equivalent of
// disabling the submit button.
func (s *BookingService) SubmitBooking(ctx context.Context, attemptKey string, req models.StayRequest, unit *models.Apartment) (*models.BookingConfirmation, error) {
	if !s.beginAttempt(attemptKey) {
		return nil, ErrSubmissionInFlight
	}
	defer s.endAttempt(attemptKey)

	if unit == nil {
		return nil, ErrNoUnitSelected
	}

	today := EarliestAllowedDate(s.now())
	var verr *ValidationError
	if s.accumulate {
		verr = s.ValidateStayRequestAll(req, unit, today)
	} else {
		verr = s.ValidateStayRequest(req, unit, today)
	}
	if verr != nil {
		return nil, verr
	}

	checkIn := req.CheckIn.Format("2006-01-02")
	checkOut := req.CheckOut.Format("2006-01-02")

	s.setState(attemptKey, StateCheckingAvailability)
	available, err := s.store.CheckAvailability(ctx, unit.ID, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, ErrStoreTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityCheckFailed, err)
	}
	if !available {
		return nil, ErrUnavailable
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	totalAmount := float64(nights) * unit.PricePerNight

	input := models.BookingInput{
		UserID:        req.CallerID,
		ApartmentID:   unit.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        req.Adults,
		Children:      req.Children,
		PricePerNight: unit.PricePerNight,
		TotalNights:   nights,
		TotalAmount:   totalAmount,
	}
	if req.SpecialRequest != "" {
		input.SpecialRequest = &req.SpecialRequest
	}

	s.setState(attemptKey, StateCreating)
	booking, err := s.store.CreateBooking(ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrStoreTimeout) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrCreationFailed, err)
	}

	// The attempt is confirmed; the stored form draft is stale now.
	if callerID := req.CallerID; callerID != nil {
		if err := s.store.DeleteDraft(ctx, *callerID); err != nil {
			log.Printf("[BookingService] Warning: failed to clear booking draft for user %s: %v", *callerID, err)
		}
	}

	s.setState(attemptKey, StateConfirmed)
	confirmation := &models.BookingConfirmation{
		BookingNumber: booking.BookingNumber,
		ApartmentName: unit.Name,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Adults:        req.Adults,
		Children:      req.Children,
		Nights:        nights,
		TotalAmount:   totalAmount,
		GuestEmail:    req.Email,
	}

	if s.mailer != nil {
		s.sendConfirmationEmail(req, unit, confirmation)
	}

	return confirmation, nil
}

func (s *BookingService) sendConfirmationEmail(req models.StayRequest, unit *models.Apartment, conf *models.BookingConfirmation) {
	data := ConfirmationEmailData{
		To:             req.Email,
		GuestName:      req.FirstName + " " + req.LastName,
		BookingNumber:  conf.BookingNumber,
		ApartmentName:  unit.Name,
		CheckIn:        FormatDisplayDate(req.CheckIn),
		CheckOut:       FormatDisplayDate(req.CheckOut),
		Nights:         conf.Nights,
		Adults:         conf.Adults,
		Children:       conf.Children,
		TotalAmount:    FormatCurrency(conf.TotalAmount),
		SpecialRequest: req.SpecialRequest,
		Year:           s.now().Year(),
	}
	if err := s.mailer.SendBookingConfirmation(data); err != nil {
		// A lost email never fails a confirmed booking.
		log.Printf("[BookingService] Warning: confirmation email for %s failed: %v", conf.BookingNumber, err)
	}
}
