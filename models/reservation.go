package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Reservation is a booking for a party, tied to one customer.
type Reservation struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"index;not null"`
	NumGuests  int       `gorm:"not null"`
	StartAt    time.Time `gorm:"not null"`
	Notes      string    `gorm:"type:text"`
}

const (
	startAtDisplayLayout = "January 2, 2006, 3:04 pm"
	startAtEditLayout    = "2006-01-02 3:04 pm"
)

// startAtInputLayouts are the accepted formats for startAt form input:
// the edit-form layout, HTML datetime-local, RFC 3339 and a plain
// 24-hour fallback. First match wins.
var startAtInputLayouts = []string{
	startAtEditLayout,
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04",
}

// FormattedStartAt renders the start time for display,
// e.g. "May 1, 2024, 7:00 pm".
func (r Reservation) FormattedStartAt() string {
	if r.StartAt.IsZero() {
		return ""
	}
	return r.StartAt.Format(startAtDisplayLayout)
}

// FormattedStartAtEdit renders the start time for the edit form,
// e.g. "2024-05-01 7:00 pm".
func (r Reservation) FormattedStartAtEdit() string {
	if r.StartAt.IsZero() {
		return ""
	}
	return r.StartAt.Format(startAtEditLayout)
}

// ParseStartAt parses form input into a reservation start time.
func ParseStartAt(value string) (time.Time, error) {
	for _, layout := range startAtInputLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Message: "invalid reservation time: " + value}
}

// ReservationsForCustomer returns a customer's reservations in store order.
func ReservationsForCustomer(db *gorm.DB, customerID uint) ([]Reservation, error) {
	var reservations []Reservation
	if err := db.Where("customer_id = ?", customerID).Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservation returns the reservation with the given id.
func GetReservation(db *gorm.DB, id uint) (*Reservation, error) {
	var reservation Reservation
	if err := db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Kind: "reservation", ID: id}
		}
		return nil, err
	}
	return &reservation, nil
}

// Save inserts the reservation when it has no id yet, and otherwise updates
// num_guests, start_at and notes. The customer a reservation belongs to
// never changes after creation.
func (r *Reservation) Save(db *gorm.DB) error {
	if r.ID == 0 {
		return db.Create(r).Error
	}
	return db.Model(r).
		Select("num_guests", "start_at", "notes").
		Updates(*r).Error
}

// Delete removes the reservation.
func (r *Reservation) Delete(db *gorm.DB) error {
	if r.ID == 0 {
		return nil
	}
	return db.Delete(r).Error
}
