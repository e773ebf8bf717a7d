package models

import "time"

type Favorite struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	ApartmentID string     `json:"apartment_id" db:"apartment_id"`
	Apartment   *Apartment `json:"apartments,omitempty"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

type AddFavoriteRequest struct {
	ApartmentID string `json:"apartment_id" binding:"required"`
}
