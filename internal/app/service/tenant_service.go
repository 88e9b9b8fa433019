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

type TenantService struct {
	tenantRepo repository.TenantRepository
	tokens     *security.Tokens
	bcryptCost int
}

func NewTenantService(tenantRepo repository.TenantRepository, tokens *security.Tokens, bcryptCost int) *TenantService {
	return &TenantService{tenantRepo: tenantRepo, tokens: tokens, bcryptCost: bcryptCost}
}

type TenantRegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TenantLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TenantUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (s *TenantService) Register(ctx context.Context, req TenantRegisterRequest) (*model.Tenant, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.Errorf("missing required fields for tenant registration: %w", common.ErrValidation)
	}

	if _, err := s.tenantRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.Errorf("email already registered: %w", common.ErrValidation)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.Errorf("failed to check tenant email: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, common.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	tenant := &model.Tenant{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) Login(ctx context.Context, req TenantLoginRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("missing required fields for login: %w", common.ErrValidation)
	}

	tenant, err := s.tenantRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
		}
		return nil, common.Errorf("failed to find tenant: %w", err)
	}
	if !security.CheckPasswordHash(req.Password, tenant.HashedPassword) {
		return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(security.SubjectTenant, tenant.ID)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{Token: token}, nil
}

func (s *TenantService) List(ctx context.Context) ([]model.Tenant, error) {
	return s.tenantRepo.FindAll(ctx)
}

func (s *TenantService) Get(ctx context.Context, id string) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("tenant not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) Update(ctx context.Context, id string, req TenantUpdateRequest) (*model.Tenant, error) {
	upd := model.TenantUpdate{Name: req.Name, Email: req.Email}
	if req.Password != nil {
		hashedPassword, err := security.HashPassword(*req.Password, s.bcryptCost)
		if err != nil {
			return nil, common.Errorf("failed to hash password: %w", err)
		}
		upd.HashedPassword = &hashedPassword
	}

	tenant, err := s.tenantRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("tenant not found: %w", common.ErrNotFound)
		}
		return nil, err
	}
	return tenant, nil
}
