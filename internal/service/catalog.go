package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"roomreserve-backend/internal/domain"
	"roomreserve-backend/internal/ledger"
	"roomreserve-backend/internal/repository"
)

type catalogService struct {
	resourceRepo repository.ResourceRepository
	ledger       *ledger.Ledger
}

func NewCatalogService(resourceRepo repository.ResourceRepository, ldg *ledger.Ledger) CatalogService {
	return &catalogService{
		resourceRepo: resourceRepo,
		ledger:       ldg,
	}
}

func (s *catalogService) ListResources(ctx context.Context) ([]domain.Resource, error) {
	return s.resourceRepo.List(ctx)
}

func (s *catalogService) GetResource(ctx context.Context, id int32) (*domain.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

func (s *catalogService) FindResourceByName(ctx context.Context, name string) (*domain.Resource, error) {
	return s.resourceRepo.GetByName(ctx, name)
}

func (s *catalogService) AddResource(ctx context.Context, res *domain.Resource) error {
	if strings.TrimSpace(res.Name) == "" {
		return fmt.Errorf("resource name is required")
	}
	switch res.Kind {
	case domain.ResourceKindRoom, domain.ResourceKindEquipment:
	default:
		return fmt.Errorf("unknown resource kind %q", res.Kind)
	}
	if res.Kind == domain.ResourceKindEquipment {
		res.Capacity = 0
	}
	return s.resourceRepo.Create(ctx, res)
}

// RemoveResource deletes a resource from the catalog. The delete is refused
// while any reservation, whatever its status, still references the resource.
func (s *catalogService) RemoveResource(ctx context.Context, id int32) error {
	if _, err := s.resourceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if s.ledger.ReferencesResource(id) {
		return domain.ErrResourceInUse
	}
	return s.resourceRepo.Delete(ctx, id)
}

func (s *catalogService) AddFeature(ctx context.Context, id int32, tag string) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res.AddFeature(tag)
	if err := s.resourceRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *catalogService) RemoveFeature(ctx context.Context, id int32, tag string) (*domain.Resource, error) {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	res.RemoveFeature(tag)
	if err := s.resourceRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *catalogService) FindAvailable(ctx context.Context, startsAt, endsAt time.Time, minCapacity int32) ([]domain.Resource, error) {
	if !startsAt.Before(endsAt) {
		return nil, domain.ErrInvalidInterval
	}
	resources, err := s.resourceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.ledger.FindAvailable(resources, startsAt, endsAt, minCapacity), nil
}
