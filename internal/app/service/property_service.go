package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"house_rent/internal/common"
	"house_rent/internal/domain/model"
	"house_rent/internal/domain/repository"
)

type PropertyService struct {
	propertyRepo repository.PropertyRepository
	ownerRepo    repository.OwnerRepository
}

func NewPropertyService(propertyRepo repository.PropertyRepository, ownerRepo repository.OwnerRepository) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo, ownerRepo: ownerRepo}
}

// CreatePropertyRequest covers both creation routes. OwnerID is taken from
// the URL on /property-owners/{id}/properties and from the body on
// POST /properties; the old owner-by-name lookup is gone, the reference must
// be explicit.
type CreatePropertyRequest struct {
	OwnerID   string   `json:"owner_id"`
	Rent      int      `json:"rent"`
	Contact   string   `json:"contact"`
	Area      string   `json:"area"`
	Place     string   `json:"place"`
	Amenities []string `json:"amenities"`
}

type PropertyUpdateRequest struct {
	Rent      *int                  `json:"rent,omitempty"`
	Contact   *string               `json:"contact,omitempty"`
	Area      *string               `json:"area,omitempty"`
	Place     *string               `json:"place,omitempty"`
	Amenities *[]string             `json:"amenities,omitempty"`
	Status    *model.PropertyStatus `json:"status,omitempty"`
}

func (s *PropertyService) Create(ctx context.Context, req CreatePropertyRequest) (*model.Property, error) {
	if req.OwnerID == "" {
		return nil, common.Errorf("owner_id is required: %w", common.ErrValidation)
	}
	if req.Rent <= 0 || req.Contact == "" || req.Area == "" || req.Place == "" {
		return nil, common.Errorf("missing required fields for property creation: %w", common.ErrValidation)
	}

	// The owner reference is validated here and never again, matching the
	// creation-time-only invariant.
	if err := s.requireOwner(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	amenities := req.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	now := time.Now().UTC()
	property := &model.Property{
		ID:        uuid.NewString(),
		OwnerID:   req.OwnerID,
		Slug:      makePropertySlug(req.Area, req.Place),
		Rent:      req.Rent,
		Contact:   req.Contact,
		Area:      req.Area,
		Place:     req.Place,
		Amenities: amenities,
		Status:    model.StatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	return s.propertyRepo.FindAll(ctx)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*model.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return property, nil
}

func (s *PropertyService) GetBySlug(ctx context.Context, propertySlug string) (*model.Property, error) {
	property, err := s.propertyRepo.FindBySlug(ctx, propertySlug)
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return property, nil
}

func (s *PropertyService) ListByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.propertyRepo.FindByOwner(ctx, ownerID)
}

func (s *PropertyService) GetOwned(ctx context.Context, ownerID, propertyID string) (*model.Property, error) {
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.FindOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return property, nil
}

func (s *PropertyService) Update(ctx context.Context, id string, req PropertyUpdateRequest) (*model.Property, error) {
	upd, err := toPropertyUpdate(req)
	if err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return property, nil
}

func (s *PropertyService) UpdateOwned(ctx context.Context, ownerID, propertyID string, req PropertyUpdateRequest) (*model.Property, error) {
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	upd, err := toPropertyUpdate(req)
	if err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.UpdateOwned(ctx, ownerID, propertyID, upd)
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return property, nil
}

// DeleteOwned removes an owner's property and returns the deleted document,
// the only deletion path in the whole system.
func (s *PropertyService) DeleteOwned(ctx context.Context, ownerID, propertyID string) (*model.Property, error) {
	if err := s.requireOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	property, err := s.propertyRepo.DeleteOwned(ctx, ownerID, propertyID)
	if err != nil {
		return nil, propertyNotFound(err)
	}
	return property, nil
}

func (s *PropertyService) requireOwner(ctx context.Context, ownerID string) error {
	if _, err := s.ownerRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("property owner not found: %w", common.ErrNotFound)
		}
		return err
	}
	return nil
}

func toPropertyUpdate(req PropertyUpdateRequest) (model.PropertyUpdate, error) {
	if req.Status != nil && *req.Status != model.StatusAvailable && *req.Status != model.StatusOccupied {
		return model.PropertyUpdate{}, common.Errorf("status must be %q or %q: %w",
			model.StatusAvailable, model.StatusOccupied, common.ErrValidation)
	}
	return model.PropertyUpdate{
		Rent:      req.Rent,
		Contact:   req.Contact,
		Area:      req.Area,
		Place:     req.Place,
		Amenities: req.Amenities,
		Status:    req.Status,
	}, nil
}

func propertyNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.Errorf("property not found: %w", common.ErrNotFound)
	}
	return err
}

// makePropertySlug builds a URL slug from the listing's area and place. The
// uuid suffix keeps two identical listings from colliding.
func makePropertySlug(area, place string) string {
	return slug.Make(area+" in "+place) + "-" + uuid.NewString()[:8]
}
