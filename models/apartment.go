package models

import "time"

type Apartment struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Location      string    `json:"location" db:"location"`
	PricePerNight float64   `json:"price_per_night" db:"price_per_night"`
	MaxGuests     int       `json:"max_guests" db:"max_guests"`
	Bedrooms      *int      `json:"bedrooms,omitempty" db:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms,omitempty" db:"bathrooms"`
	Images        []string  `json:"images,omitempty" db:"images"`
	Amenities     []string  `json:"amenities,omitempty" db:"amenities"`
	IsAvailable   bool      `json:"is_available" db:"is_available"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
