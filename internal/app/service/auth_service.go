package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"house_rent/internal/common"
	"house_rent/internal/common/security"
	"house_rent/internal/domain/model"
	"house_rent/internal/domain/repository"
)

// AuthService implements the generic /register and /login flows. Registration
// writes two documents: the role-specific record first, then the credential
// Account. The writes are not atomic; on Account failure the role record is
// removed best-effort so a retry with the same email can succeed.
type AuthService struct {
	accountRepo repository.AccountRepository
	ownerRepo   repository.OwnerRepository
	tenantRepo  repository.TenantRepository
	tokens      *security.Tokens
	bcryptCost  int
}

func NewAuthService(
	accountRepo repository.AccountRepository,
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	tokens *security.Tokens,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		ownerRepo:   ownerRepo,
		tenantRepo:  tenantRepo,
		tokens:      tokens,
		bcryptCost:  bcryptCost,
	}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Usertype string `json:"usertype"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Usertype string `json:"usertype"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, common.Errorf("missing required fields for registration: %w", common.ErrValidation)
	}
	if req.Usertype != model.RoleTenant && req.Usertype != model.RoleOwner {
		return nil, common.Errorf("usertype must be %q or %q: %w", model.RoleTenant, model.RoleOwner, common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, common.Errorf("failed to hash password: %w", err)
	}

	// Role record first, credential record second. A duplicate email fails
	// here before any Account is written.
	now := time.Now().UTC()
	var kind security.SubjectKind
	var roleID string
	switch req.Usertype {
	case model.RoleTenant:
		tenant := &model.Tenant{
			ID:             uuid.NewString(),
			Name:           req.Username,
			Email:          req.Email,
			HashedPassword: hashedPassword,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.tenantRepo.Create(ctx, tenant); err != nil {
			return nil, err
		}
		kind, roleID = security.SubjectTenant, tenant.ID
	case model.RoleOwner:
		owner := &model.Owner{
			ID:             uuid.NewString(),
			Name:           req.Username,
			Email:          req.Email,
			HashedPassword: hashedPassword,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.ownerRepo.Create(ctx, owner); err != nil {
			return nil, err
		}
		kind, roleID = security.SubjectOwner, owner.ID
	}

	account := &model.Account{
		ID:             uuid.NewString(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Role:           req.Usertype,
		CreatedAt:      now,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.rollbackRoleRecord(ctx, kind, roleID)
		return nil, common.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokens.Generate(kind, roleID)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if req.Username == "" || req.Password == "" || req.Usertype == "" {
		return nil, common.Errorf("missing required fields for login: %w", common.ErrValidation)
	}

	account, err := s.accountRepo.FindByUsernameAndRole(ctx, req.Username, req.Usertype)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
		}
		return nil, common.Errorf("failed to find account: %w", err)
	}
	if !security.CheckPasswordHash(req.Password, account.HashedPassword) {
		return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	// Resolve the shadowed role record by the email duplicated onto the
	// Account, so the token carries the role-record id.
	var kind security.SubjectKind
	var roleID string
	switch account.Role {
	case model.RoleTenant:
		tenant, err := s.tenantRepo.FindByEmail(ctx, account.Email)
		if err != nil {
			return nil, orphanAccountError(err)
		}
		kind, roleID = security.SubjectTenant, tenant.ID
	case model.RoleOwner:
		owner, err := s.ownerRepo.FindByEmail(ctx, account.Email)
		if err != nil {
			return nil, orphanAccountError(err)
		}
		kind, roleID = security.SubjectOwner, owner.ID
	default:
		return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	token, err := s.tokens.Generate(kind, roleID)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{Token: token}, nil
}

func (s *AuthService) rollbackRoleRecord(ctx context.Context, kind security.SubjectKind, roleID string) {
	var err error
	switch kind {
	case security.SubjectTenant:
		err = s.tenantRepo.Delete(ctx, roleID)
	case security.SubjectOwner:
		err = s.ownerRepo.Delete(ctx, roleID)
	}
	if err != nil {
		log.Printf("registration rollback failed, orphan %s record %s: %v", kind, roleID, err)
	}
}

// orphanAccountError hides a missing role record behind invalid credentials.
// An Account without its role record cannot get a usable subject token.
func orphanAccountError(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}
	return common.Errorf("failed to resolve role record: %w", err)
}
