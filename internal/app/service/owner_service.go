package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"house_rent/internal/common"
	"house_rent/internal/common/security"
	"house_rent/internal/domain/model"
	"house_rent/internal/domain/repository"
)

type OwnerService struct {
	ownerRepo    repository.OwnerRepository
	propertyRepo repository.PropertyRepository
	tokens       *security.Tokens
	bcryptCost   int
}

func NewOwnerService(
	ownerRepo repository.OwnerRepository,
	propertyRepo repository.PropertyRepository,
	tokens *security.Tokens,
	bcryptCost int,
) *OwnerService {
	return &OwnerService{
		ownerRepo:    ownerRepo,
		propertyRepo: propertyRepo,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
	}
}

type OwnerRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OwnerLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OwnerUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CurrentOwnerResponse struct {
	Owner    *model.Owner    `json:"owner"`
	Property *model.Property `json:"property"`
}

// Register creates an owner from the email-keyed /property-owners/register
// flow. POST /property-owners shares this path; both hash the password and
// reject a duplicate email.
func (s *OwnerService) Register(ctx context.Context, req OwnerRegisterRequest) (*model.Owner, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.Errorf("missing required fields for owner registration: %w", common.ErrValidation)
	}

	if _, err := s.ownerRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.Errorf("email already registered: %w", common.ErrValidation)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.Errorf("failed to check owner email: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, common.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	owner := &model.Owner{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.ownerRepo.Create(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) Login(ctx context.Context, req OwnerLoginRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("missing required fields for login: %w", common.ErrValidation)
	}

	owner, err := s.ownerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
		}
		return nil, common.Errorf("failed to find owner: %w", err)
	}
	if !security.CheckPasswordHash(req.Password, owner.HashedPassword) {
		return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(security.SubjectOwner, owner.ID)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{Token: token}, nil
}

func (s *OwnerService) List(ctx context.Context) ([]model.Owner, error) {
	return s.ownerRepo.FindAll(ctx)
}

func (s *OwnerService) Get(ctx context.Context, id string) (*model.Owner, error) {
	owner, err := s.ownerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("property owner not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) Update(ctx context.Context, id string, req OwnerUpdateRequest) (*model.Owner, error) {
	upd := model.OwnerUpdate{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		hashedPassword, err := security.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, common.Errorf("failed to hash password: %w", err)
		}
		upd.HashedPassword = &hashedPassword
	}

	owner, err := s.ownerRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("property owner not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return owner, nil
}

// Current resolves the authenticated owner and the property they list,
// answering GET /current-owner.
func (s *OwnerService) Current(ctx context.Context, ownerID string) (*CurrentOwnerResponse, error) {
	owner, err := s.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindFirstByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("property not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return &CurrentOwnerResponse{Owner: owner, Property: property}, nil
}
