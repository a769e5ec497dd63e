// Package ledger owns the authoritative in-memory collection of reservations
// and the operations that mutate it: conflict-free confirmation, legal status
// transitions, and availability queries.
package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"roomreserve-backend/internal/domain"
)

// Store is the persistence collaborator. Every mutation is written through
// before the in-memory ledger commits, so a failed write leaves the ledger
// unchanged.
type Store interface {
	InsertReservation(ctx context.Context, r *domain.Reservation) error
	UpdateReservation(ctx context.Context, r *domain.Reservation) error
	DeleteReservation(ctx context.Context, id int32) error
}

// Ledger guards all reads and writes with a single mutex: the conflict check
// and the mutation it conditions run as one critical section.
type Ledger struct {
	mu           sync.Mutex
	store        Store
	reservations []*domain.Reservation
	nextID       int32
}

// New builds a ledger over a loaded snapshot. The id counter resumes at
// max(existing ids)+1, so ids stay unique across restarts even when the
// surviving set is sparse.
func New(store Store, seed []domain.Reservation) *Ledger {
	l := &Ledger{store: store, nextID: 1}
	for i := range seed {
		r := seed[i]
		l.reservations = append(l.reservations, &r)
		if r.ID >= l.nextID {
			l.nextID = r.ID + 1
		}
	}
	return l
}

// Create validates the requested span, checks it against every confirmed
// reservation for the resource, and appends a new PENDING reservation.
func (l *Ledger) Create(ctx context.Context, resource *domain.Resource, requester *domain.User, startsAt, endsAt time.Time, purpose string) (*domain.Reservation, error) {
	if !startsAt.Before(endsAt) {
		return nil, domain.ErrInvalidInterval
	}
	if !sameDay(startsAt, endsAt) {
		return nil, fmt.Errorf("%w: reservation must start and end on the same day", domain.ErrInvalidInterval)
	}
	if dayOf(startsAt).Before(dayOf(time.Now())) {
		return nil, domain.ErrPastDate
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	candidate := &domain.Reservation{
		ResourceID:    resource.ID,
		ResourceName:  resource.Name,
		RequesterID:   requester.ID,
		RequesterName: requester.Username,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Purpose:       purpose,
		Status:        domain.ReservationStatusPending,
		CreatedOn:     time.Now(),
	}
	for _, existing := range l.reservations {
		if candidate.ConflictsWith(existing) {
			return nil, &domain.ConflictError{Blocking: existing}
		}
	}

	// The id is consumed only once the store accepts the row.
	candidate.ID = l.nextID
	if err := l.store.InsertReservation(ctx, candidate); err != nil {
		return nil, &domain.StorageError{Op: "insert reservation", Err: err}
	}
	l.nextID++
	l.reservations = append(l.reservations, candidate)

	out := *candidate
	return &out, nil
}

// Confirm flips a PENDING reservation to CONFIRMED after re-checking it
// against every other confirmed reservation.
func (l *Ledger) Confirm(ctx context.Context, id int32) (*domain.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.find(id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("%w: reservation %d is %s, not PENDING", domain.ErrInvalidState, id, r.Status)
	}
	for _, other := range l.reservations {
		if other.ID == r.ID {
			continue
		}
		if r.ConflictsWith(other) {
			return nil, &domain.ConflictError{Blocking: other}
		}
	}

	return l.commit(ctx, r, func(c *domain.Reservation) {
		c.Status = domain.ReservationStatusConfirmed
	})
}

// Reject closes a PENDING reservation with a mandatory justification.
func (l *Ledger) Reject(ctx context.Context, id int32, reason string) (*domain.Reservation, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrReasonRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.find(id)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("%w: reservation %d is %s, not PENDING", domain.ErrInvalidState, id, r.Status)
	}

	return l.commit(ctx, r, func(c *domain.Reservation) {
		c.Status = domain.ReservationStatusRejected
		c.Observation = reason
	})
}

// Cancel closes a PENDING or CONFIRMED reservation. The reason is optional
// but recorded when given.
func (l *Ledger) Cancel(ctx context.Context, id int32, reason string) (*domain.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.find(id)
	if err != nil {
		return nil, err
	}
	if r.Status.IsClosed() {
		return nil, fmt.Errorf("%w: reservation %d is already closed (%s)", domain.ErrInvalidState, id, r.Status)
	}

	return l.commit(ctx, r, func(c *domain.Reservation) {
		c.Status = domain.ReservationStatusCancelled
		c.Observation = reason
	})
}

// Delete removes a reservation from the ledger permanently, bypassing all
// state checks.
func (l *Ledger) Delete(ctx context.Context, id int32) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, r := range l.reservations {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
	}
	if err := l.store.DeleteReservation(ctx, id); err != nil {
		return &domain.StorageError{Op: "delete reservation", Err: err}
	}
	l.reservations = append(l.reservations[:idx], l.reservations[idx+1:]...)
	return nil
}

// Get returns a copy of one reservation.
func (l *Ledger) Get(id int32) (*domain.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, err := l.find(id)
	if err != nil {
		return nil, err
	}
	out := *r
	return &out, nil
}

// ListAll returns a snapshot of every reservation, ordered by id.
func (l *Ledger) ListAll() []domain.Reservation {
	return l.list(func(*domain.Reservation) bool { return true })
}

// ListPending returns the reservations awaiting an admin decision.
func (l *Ledger) ListPending() []domain.Reservation {
	return l.list(func(r *domain.Reservation) bool {
		return r.Status == domain.ReservationStatusPending
	})
}

// ListByRequester returns the reservations made by one user.
func (l *Ledger) ListByRequester(userID int32) []domain.Reservation {
	return l.list(func(r *domain.Reservation) bool {
		return r.RequesterID == userID
	})
}

// ListByResource returns the reservations referencing one resource.
func (l *Ledger) ListByResource(resourceID int32) []domain.Reservation {
	return l.list(func(r *domain.Reservation) bool {
		return r.ResourceID == resourceID
	})
}

// ReferencesResource reports whether any reservation, in any status, still
// points at the resource.
func (l *Ledger) ReferencesResource(resourceID int32) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.reservations {
		if r.ResourceID == resourceID {
			return true
		}
	}
	return false
}

// FindAvailable filters the catalog down to resources not overlapped by any
// confirmed reservation in [startsAt, endsAt) on that date. A positive
// minCapacity keeps rooms with enough seats and excludes equipment, which
// carries no capacity.
func (l *Ledger) FindAvailable(resources []domain.Resource, startsAt, endsAt time.Time, minCapacity int32) []domain.Resource {
	l.mu.Lock()
	blocked := make(map[int32]bool)
	for _, r := range l.reservations {
		if r.Status != domain.ReservationStatusConfirmed {
			continue
		}
		if !r.Day().Equal(dayOf(startsAt)) {
			continue
		}
		if r.Overlaps(startsAt, endsAt) {
			blocked[r.ResourceID] = true
		}
	}
	l.mu.Unlock()

	var available []domain.Resource
	for _, res := range resources {
		if blocked[res.ID] {
			continue
		}
		if minCapacity > 0 && res.Capacity < minCapacity {
			continue
		}
		available = append(available, res)
	}
	return available
}

// commit persists a mutated copy and swaps it in only on success.
func (l *Ledger) commit(ctx context.Context, r *domain.Reservation, mutate func(*domain.Reservation)) (*domain.Reservation, error) {
	updated := *r
	mutate(&updated)
	if err := l.store.UpdateReservation(ctx, &updated); err != nil {
		return nil, &domain.StorageError{Op: "update reservation", Err: err}
	}
	*r = updated
	out := updated
	return &out, nil
}

// find returns the live entry for an id. Callers hold the mutex.
func (l *Ledger) find(id int32) (*domain.Reservation, error) {
	for _, r := range l.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: reservation %d", domain.ErrNotFound, id)
}

func (l *Ledger) list(keep func(*domain.Reservation) bool) []domain.Reservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []domain.Reservation
	for _, r := range l.reservations {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}
