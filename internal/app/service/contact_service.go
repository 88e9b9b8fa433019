package service

import (
	"context"
	"errors"

	"house_rent/internal/common"
	"house_rent/internal/domain/repository"
)

// ContactService drives the two-state contact-request flag on an owner:
// absent (no request) -> set to a tenant id (requested) -> absent again
// (approved). There is no audit trail and no guard against concurrent
// transitions; the last write wins.
type ContactService struct {
	ownerRepo  repository.OwnerRepository
	tenantRepo repository.TenantRepository
}

func NewContactService(ownerRepo repository.OwnerRepository, tenantRepo repository.TenantRepository) *ContactService {
	return &ContactService{ownerRepo: ownerRepo, tenantRepo: tenantRepo}
}

type ContactRequest struct {
	TenantID string `json:"tenantId"`
}

// Request sets the flag on behalf of the authenticated tenant. The token
// subject must match the tenant id in the body; a request already pending is
// silently overwritten.
func (s *ContactService) Request(ctx context.Context, ownerID, tenantID, subjectID string) error {
	if tenantID == "" {
		return common.Errorf("tenantId is required: %w", common.ErrValidation)
	}
	if subjectID != tenantID {
		return common.Errorf("token subject does not match tenantId: %w", common.ErrUnauthorized)
	}

	if _, err := s.tenantRepo.FindByID(ctx, tenantID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("tenant not found: %w", common.ErrNotFound)
		}
		return err
	}

	if err := s.ownerRepo.SetContactRequest(ctx, ownerID, tenantID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("property owner not found: %w", common.ErrNotFound)
		}
		return err
	}
	return nil
}

// Approve clears the flag. Only the owner the request targets may approve,
// and only while a request is pending.
func (s *ContactService) Approve(ctx context.Context, ownerID, subjectID string) error {
	if subjectID != ownerID {
		return common.Errorf("token subject does not match owner: %w", common.ErrUnauthorized)
	}

	owner, err := s.ownerRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("property owner not found: %w", common.ErrNotFound)
		}
		return err
	}
	if owner.ContactRequestedBy == nil {
		return common.Errorf("no contact request pending: %w", common.ErrBadRequest)
	}

	if err := s.ownerRepo.ClearContactRequest(ctx, ownerID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("property owner not found: %w", common.ErrNotFound)
		}
		return err
	}
	return nil
}
