package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/ledger"
	"roomreserve-backend/internal/logger"
	"roomreserve-backend/internal/repository"
)

var ErrForbidden = errors.New("not allowed to access this reservation")

type reservationService struct {
	ledger       *ledger.Ledger
	resourceRepo repository.ResourceRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
}

func NewReservationService(
	ldg *ledger.Ledger,
	resourceRepo repository.ResourceRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		ledger:       ldg,
		resourceRepo: resourceRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
	}
}

func (s *reservationService) Request(ctx context.Context, requesterID, resourceID int32, startsAt, endsAt time.Time, purpose string) (*domain.Reservation, error) {
	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	rv, err := s.ledger.Create(ctx, resource, requester, startsAt, endsAt, purpose)
	if err != nil {
		return nil, err
	}

	// Administrators get a heads-up; a mail failure never fails the request.
	admins, err := s.userRepo.ListAdministrators(ctx)
	if err != nil {
		logger.Warn("could not list administrators for notification", "error", err)
		return rv, nil
	}
	for _, admin := range admins {
		if admin.Email == "" {
			continue
		}
		if err := s.emailSvc.SendReservationRequestedNotification(ctx, admin.Email, requester.Username, resource.Name, slotOf(rv)); err != nil {
			logger.Warn("failed to send request notification", "admin", admin.Username, "error", err)
		}
	}

	return rv, nil
}

func (s *reservationService) Confirm(ctx context.Context, id int32) (*domain.Reservation, error) {
	rv, err := s.ledger.Confirm(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifyRequester(ctx, rv, "confirmed", "")
	return rv, nil
}

func (s *reservationService) Reject(ctx context.Context, id int32, reason string) (*domain.Reservation, error) {
	rv, err := s.ledger.Reject(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	s.notifyRequester(ctx, rv, "rejected", reason)
	return rv, nil
}

func (s *reservationService) Cancel(ctx context.Context, userID int32, isAdmin bool, id int32, reason string) (*domain.Reservation, error) {
	current, err := s.ledger.Get(id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && current.RequesterID != userID {
		return nil, ErrForbidden
	}

	rv, err := s.ledger.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	s.notifyRequester(ctx, rv, "cancelled", reason)
	return rv, nil
}

func (s *reservationService) Delete(ctx context.Context, id int32) error {
	return s.ledger.Delete(ctx, id)
}

func (s *reservationService) Get(ctx context.Context, userID int32, isAdmin bool, id int32) (*domain.Reservation, error) {
	rv, err := s.ledger.Get(id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && rv.RequesterID != userID {
		return nil, ErrForbidden
	}
	return rv, nil
}

func (s *reservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.ledger.ListAll(), nil
}

func (s *reservationService) ListPending(ctx context.Context) ([]domain.Reservation, error) {
	return s.ledger.ListPending(), nil
}

func (s *reservationService) ListMine(ctx context.Context, userID int32) ([]domain.Reservation, error) {
	return s.ledger.ListByRequester(userID), nil
}

func (s *reservationService) ListByResource(ctx context.Context, resourceID int32) ([]domain.Reservation, error) {
	if _, err := s.resourceRepo.GetByID(ctx, resourceID); err != nil {
		return nil, err
	}
	return s.ledger.ListByResource(resourceID), nil
}

func (s *reservationService) notifyRequester(ctx context.Context, rv *domain.Reservation, decision, reason string) {
	requester, err := s.userRepo.GetByID(ctx, rv.RequesterID)
	if err != nil || requester.Email == "" {
		return
	}
	if err := s.emailSvc.SendReservationDecisionNotification(ctx, requester.Email, requester.Name, rv.ResourceName, slotOf(rv), decision, reason); err != nil {
		logger.Warn("failed to send decision notification", "reservation", rv.ID, "decision", decision, "error", err)
	}
}

func slotOf(rv *domain.Reservation) string {
	return fmt.Sprintf("%s %s-%s",
		rv.Day().Format("2006-01-02"),
		rv.StartsAt.Format("15:04"),
		rv.EndsAt.Format("15:04"))
}
