package services

import (
	"errors"
	"strings"
)

// Date range guard failures.
var (
	ErrPastCheckIn   = errors.New("booking: check-in date cannot be in the past")
	ErrInvertedRange = errors.New("booking: check-out date must be after check-in date")
)

// Booking workflow failures. ErrUnavailable is a business answer from the
// store; the others are infrastructure faults or configuration faults.
var (
	ErrNoUnitSelected          = errors.New("booking: no apartment selected")
	ErrUnavailable             = errors.New("booking: apartment is not available for the selected dates")
	ErrAvailabilityCheckFailed = errors.New("booking: availability check failed")
	ErrCreationFailed          = errors.New("booking: failed to create booking")
	ErrStoreTimeout            = errors.New("booking: reservation store timed out")
	ErrSubmissionInFlight      = errors.New("booking: a submission is already in progress")
)

// ValidationError carries the user-facing message(s) for a failed local
// validation. In the default short-circuit mode Messages holds exactly the
// first failing rule; in accumulating mode it holds every failing rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Message returns the first failing rule's text, which is what gets shown.
func (e *ValidationError) Message() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}
