package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DrewGalowayDev/AIRBNB/config"
	"github.com/DrewGalowayDev/AIRBNB/models"
	"github.com/DrewGalowayDev/AIRBNB/services"
)

type BookingHandler struct {
	store    services.ReservationStore
	bookings *services.BookingService
	config   *config.Config
}

func NewBookingHandler(store services.ReservationStore, bookings *services.BookingService, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		store:    store,
		bookings: bookings,
		config:   cfg,
	}
}

// CreateBooking runs the full submission workflow: resolve the target
// apartment, validate, pre-flight availability check, create, confirm.
// Works for guests and signed-in users alike.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	apartment, ok := h.resolveApartment(c, req.ApartmentID)
	if !ok {
		return
	}

	stay := models.StayRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		CheckIn:        parseDate(req.CheckIn),
		CheckOut:       parseDate(req.CheckOut),
		Adults:         req.Adults,
		Children:       req.Children,
		SpecialRequest: req.SpecialRequest,
	}
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok && id != "" {
			stay.CallerID = &id
		}
	}

	confirmation, err := h.bookings.SubmitBooking(c.Request.Context(), attemptKey(c), stay, apartment)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Booking created successfully!",
		Data:    confirmation,
	})
}

func (h *BookingHandler) renderBookingError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   verr.Error(),
		})
	case errors.Is(err, services.ErrUnavailable):
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   "Sorry, the apartment is not available for the selected dates. Please choose different dates.",
		})
	case errors.Is(err, services.ErrNoUnitSelected):
		c.JSON(http.StatusServiceUnavailable, models.Response{
			Success: false,
			Error:   "No apartment selected. Please try again.",
		})
	case errors.Is(err, services.ErrSubmissionInFlight):
		c.JSON(http.StatusTooManyRequests, models.Response{
			Success: false,
			Error:   "Your booking is already being processed. Please wait.",
		})
	case errors.Is(err, services.ErrStoreTimeout):
		c.JSON(http.StatusGatewayTimeout, models.Response{
			Success: false,
			Error:   "The booking service is taking too long to respond. Please try again.",
		})
	default:
		// ErrAvailabilityCheckFailed and ErrCreationFailed land here: an
		// infrastructure fault, recoverable by resubmitting.
		fmt.Printf("[CreateBooking] Store error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "An error occurred while processing your booking. Please try again.",
		})
	}
}

// resolveApartment picks the booking target: the requested apartment when an
// id is supplied, otherwise the first available one (the site books a single
// default unit).
func (h *BookingHandler) resolveApartment(c *gin.Context, apartmentID string) (*models.Apartment, bool) {
	if apartmentID != "" {
		apartment, err := h.store.GetApartment(c.Request.Context(), apartmentID)
		if err != nil {
			fmt.Printf("[CreateBooking] Apartment lookup failed: %v\n", err)
			c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Error:   "Apartment not found",
			})
			return nil, false
		}
		return apartment, true
	}

	apartments, err := h.store.ListAvailableApartments(c.Request.Context())
	if err != nil || len(apartments) == 0 {
		fmt.Printf("[CreateBooking] No apartments available: %v\n", err)
		c.JSON(http.StatusServiceUnavailable, models.Response{
			Success: false,
			Error:   "No apartments available at the moment",
		})
		return nil, false
	}
	return &apartments[0], true
}

// CheckAvailability is the pre-flight check the date picker calls before the
// form is submitted.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	apartmentID := c.Query("apartment_id")
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")

	if apartmentID == "" || checkIn == "" || checkOut == "" {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "apartment_id, check_in and check_out are required",
		})
		return
	}

	checkInDate := parseDate(checkIn)
	checkOutDate := parseDate(checkOut)
	if checkInDate.IsZero() || checkOutDate.IsZero() {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Dates must be formatted as YYYY-MM-DD",
		})
		return
	}
	if err := services.ValidateRange(checkInDate, checkOutDate, services.EarliestAllowedDate(time.Now())); err != nil {
		msg := "Check-out date must be after check-in date"
		if errors.Is(err, services.ErrPastCheckIn) {
			msg = "Check-in date cannot be in the past"
		}
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   msg,
		})
		return
	}

	available, err := h.store.CheckAvailability(c.Request.Context(), apartmentID, checkIn, checkOut)
	if err != nil {
		fmt.Printf("[CheckAvailability] Store error: %v\n", err)
		c.JSON(http.StatusBadGateway, models.Response{
			Success: false,
			Error:   "Error checking availability",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    models.AvailabilityResponse{Available: available},
	})
}

func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, _ := c.Get("user_id")

	bookings, err := h.store.GetUserBookings(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    bookings,
	})
}

func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	bookingID := c.Param("id")
	userID, _ := c.Get("user_id")

	booking, err := h.store.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Booking not found",
		})
		return
	}

	// Owners only; guest bookings have no owner and stay private.
	if booking.UserID == nil || *booking.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Not allowed",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    booking,
	})
}

// CancelBooking flips the booking to cancelled. Only pending and confirmed
// bookings can be cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID := c.Param("id")
	userID, _ := c.Get("user_id")

	booking, err := h.store.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "Booking not found",
		})
		return
	}

	if booking.UserID == nil || *booking.UserID != userID.(string) {
		c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Error:   "Not allowed",
		})
		return
	}

	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusConfirmed {
		c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Error:   fmt.Sprintf("A %s booking cannot be cancelled", booking.Status),
		})
		return
	}

	cancelled, err := h.store.UpdateBookingStatus(c.Request.Context(), bookingID, models.BookingStatusCancelled)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to cancel booking",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Booking cancelled successfully",
		Data:    cancelled,
	})
}

// =====================================================
// BOOKING FORM DRAFTS
// =====================================================

func (h *BookingHandler) SaveDraft(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}
	draft.UserID = userID.(string)

	if err := h.store.SaveDraft(c.Request.Context(), draft); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to save draft",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Draft saved",
	})
}

func (h *BookingHandler) GetDraft(c *gin.Context) {
	userID, _ := c.Get("user_id")

	draft, err := h.store.GetDraft(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to fetch draft",
		})
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Error:   "No draft found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    draft,
	})
}

func (h *BookingHandler) ClearDraft(c *gin.Context) {
	userID, _ := c.Get("user_id")

	if err := h.store.DeleteDraft(c.Request.Context(), userID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Error:   "Failed to clear draft",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Draft cleared",
	})
}

// attemptKey identifies the submitting session for the resubmission guard:
// the user id when signed in, the client-supplied session id otherwise, the
// client address as a last resort.
func attemptKey(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(string); ok && id != "" {
			return "user:" + id
		}
	}
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return "session:" + sessionID
	}
	return "addr:" + c.ClientIP()
}

func parseDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return t
}
