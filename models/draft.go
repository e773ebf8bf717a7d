package models

import "time"

// BookingDraft is the session-scoped copy of a half-filled booking form,
// kept so the form can be repopulated after a reload. One row per user.
type BookingDraft struct {
	UserID         string    `json:"user_id" db:"user_id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	CheckIn        string    `json:"check_in" db:"check_in"`
	CheckOut       string    `json:"check_out" db:"check_out"`
	Adults         int       `json:"adults" db:"adults"`
	Children       int       `json:"children" db:"children"`
	SpecialRequest string    `json:"special_request" db:"special_request"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
