package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusRejected  ReservationStatus = "REJECTED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// IsClosed reports whether the status is terminal. Closed reservations accept
// no further transition except physical delete.
func (s ReservationStatus) IsClosed() bool {
	return s == ReservationStatusRejected || s == ReservationStatusCancelled
}

// Reservation is one request to use a resource for a time span on a single
// day. Resource and requester names are snapshotted at creation time so
// conflict messages and listings need no directory lookup.
type Reservation struct {
	ID            int32             `json:"id"`
	ResourceID    int32             `json:"resource_id"`
	ResourceName  string            `json:"resource_name"`
	RequesterID   int32             `json:"requester_id"`
	RequesterName string            `json:"requester_name"`
	StartsAt      time.Time         `json:"starts_at"`
	EndsAt        time.Time         `json:"ends_at"`
	Purpose       string            `json:"purpose"`
	Status        ReservationStatus `json:"status"`
	// Justification recorded on rejection or cancellation.
	Observation string    `json:"observation"`
	CreatedOn   time.Time `json:"created_on"`
}

// Day returns the reservation's calendar date with the clock stripped.
func (r *Reservation) Day() time.Time {
	y, m, d := r.StartsAt.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.StartsAt.Location())
}

// SameDay reports whether both reservations fall on the same calendar date.
func (r *Reservation) SameDay(other *Reservation) bool {
	return r.Day().Equal(other.Day())
}

// Overlaps reports whether the reservation's span intersects [start, end)
// as half-open intervals: touching endpoints do not overlap, so back-to-back
// bookings are allowed.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return start.Before(r.EndsAt) && end.After(r.StartsAt)
}

// ConflictsWith reports whether the other reservation blocks this one.
// Only CONFIRMED reservations block: two pending requests for the same slot
// never conflict at this layer, conflict is resolved at confirmation time.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	if other.Status != ReservationStatusConfirmed {
		return false
	}
	if r.ResourceID != other.ResourceID || !r.SameDay(other) {
		return false
	}
	return r.Overlaps(other.StartsAt, other.EndsAt)
}

// Describe returns the human-readable one-liner used in conflict messages.
func (r *Reservation) Describe() string {
	return fmt.Sprintf("%s reserved by %s from %s to %s on %s",
		r.ResourceName,
		r.RequesterName,
		r.StartsAt.Format("15:04"),
		r.EndsAt.Format("15:04"),
		r.Day().Format("2006-01-02"))
}
