package api

import (
	"context"
	"time"

	"house_rent/internal/common"
	"house_rent/internal/domain/model"
)

// In-memory repositories backing the end-to-end tests; they reproduce the
// ErrNotFound sentinels and unique-email behavior of the mongo layer.

type memAccountRepo struct {
	accounts map[string]*model.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]*model.Account{}}
}

func (r *memAccountRepo) Create(_ context.Context, account *model.Account) error {
	r.accounts[account.ID] = account
	return nil
}

func (r *memAccountRepo) FindByUsernameAndRole(_ context.Context, username, role string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username && a.Role == role {
			return a, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memAccountRepo) FindByID(_ context.Context, id string) (*model.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, common.ErrNotFound
}

type memOwnerRepo struct {
	owners map[string]*model.Owner
}

func newMemOwnerRepo() *memOwnerRepo {
	return &memOwnerRepo{owners: map[string]*model.Owner{}}
}

func (r *memOwnerRepo) Create(_ context.Context, owner *model.Owner) error {
	for _, o := range r.owners {
		if o.Email == owner.Email {
			return common.Errorf("email already registered: %w", common.ErrValidation)
		}
	}
	r.owners[owner.ID] = owner
	return nil
}

func (r *memOwnerRepo) FindByID(_ context.Context, id string) (*model.Owner, error) {
	if o, ok := r.owners[id]; ok {
		return o, nil
	}
	return nil, common.ErrNotFound
}

func (r *memOwnerRepo) FindByEmail(_ context.Context, email string) (*model.Owner, error) {
	for _, o := range r.owners {
		if o.Email == email {
			return o, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memOwnerRepo) FindAll(_ context.Context) ([]model.Owner, error) {
	out := []model.Owner{}
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *memOwnerRepo) Update(_ context.Context, id string, upd model.OwnerUpdate) (*model.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if upd.Name != nil {
		o.Name = *upd.Name
	}
	if upd.Email != nil {
		o.Email = *upd.Email
	}
	if upd.HashedPassword != nil {
		o.HashedPassword = *upd.HashedPassword
	}
	o.UpdatedAt = time.Now().UTC()
	return o, nil
}

func (r *memOwnerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.owners[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.owners, id)
	return nil
}

func (r *memOwnerRepo) SetContactRequest(_ context.Context, ownerID, tenantID string) error {
	o, ok := r.owners[ownerID]
	if !ok {
		return common.ErrNotFound
	}
	o.ContactRequestedBy = &tenantID
	return nil
}

func (r *memOwnerRepo) ClearContactRequest(_ context.Context, ownerID string) error {
	o, ok := r.owners[ownerID]
	if !ok {
		return common.ErrNotFound
	}
	o.ContactRequestedBy = nil
	return nil
}

type memTenantRepo struct {
	tenants map[string]*model.Tenant
}

func newMemTenantRepo() *memTenantRepo {
	return &memTenantRepo{tenants: map[string]*model.Tenant{}}
}

func (r *memTenantRepo) Create(_ context.Context, tenant *model.Tenant) error {
	for _, t := range r.tenants {
		if t.Email == tenant.Email {
			return common.Errorf("email already registered: %w", common.ErrValidation)
		}
	}
	r.tenants[tenant.ID] = tenant
	return nil
}

func (r *memTenantRepo) FindByID(_ context.Context, id string) (*model.Tenant, error) {
	if t, ok := r.tenants[id]; ok {
		return t, nil
	}
	return nil, common.ErrNotFound
}

func (r *memTenantRepo) FindByEmail(_ context.Context, email string) (*model.Tenant, error) {
	for _, t := range r.tenants {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memTenantRepo) FindAll(_ context.Context) ([]model.Tenant, error) {
	out := []model.Tenant{}
	for _, t := range r.tenants {
		out = append(out, *t)
	}
	return out, nil
}

func (r *memTenantRepo) Update(_ context.Context, id string, upd model.TenantUpdate) (*model.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Email != nil {
		t.Email = *upd.Email
	}
	if upd.HashedPassword != nil {
		t.HashedPassword = *upd.HashedPassword
	}
	t.UpdatedAt = time.Now().UTC()
	return t, nil
}

func (r *memTenantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tenants[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.tenants, id)
	return nil
}

type memPropertyRepo struct {
	properties map[string]*model.Property
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: map[string]*model.Property{}}
}

func (r *memPropertyRepo) Create(_ context.Context, property *model.Property) error {
	r.properties[property.ID] = property
	return nil
}

func (r *memPropertyRepo) FindByID(_ context.Context, id string) (*model.Property, error) {
	if p, ok := r.properties[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (r *memPropertyRepo) FindBySlug(_ context.Context, slug string) (*model.Property, error) {
	for _, p := range r.properties {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memPropertyRepo) FindAll(_ context.Context) ([]model.Property, error) {
	out := []model.Property{}
	for _, p := range r.properties {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memPropertyRepo) FindByOwner(_ context.Context, ownerID string) ([]model.Property, error) {
	out := []model.Property{}
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memPropertyRepo) FindFirstByOwner(_ context.Context, ownerID string) (*model.Property, error) {
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memPropertyRepo) FindOwned(_ context.Context, ownerID, propertyID string) (*model.Property, error) {
	if p, ok := r.properties[propertyID]; ok && p.OwnerID == ownerID {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (r *memPropertyRepo) Update(_ context.Context, id string, upd model.PropertyUpdate) (*model.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.apply(p, upd), nil
}

func (r *memPropertyRepo) UpdateOwned(_ context.Context, ownerID, propertyID string, upd model.PropertyUpdate) (*model.Property, error) {
	p, ok := r.properties[propertyID]
	if !ok || p.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return r.apply(p, upd), nil
}

func (r *memPropertyRepo) apply(p *model.Property, upd model.PropertyUpdate) *model.Property {
	if upd.Rent != nil {
		p.Rent = *upd.Rent
	}
	if upd.Contact != nil {
		p.Contact = *upd.Contact
	}
	if upd.Area != nil {
		p.Area = *upd.Area
	}
	if upd.Place != nil {
		p.Place = *upd.Place
	}
	if upd.Amenities != nil {
		p.Amenities = *upd.Amenities
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	p.UpdatedAt = time.Now().UTC()
	return p
}

func (r *memPropertyRepo) DeleteOwned(_ context.Context, ownerID, propertyID string) (*model.Property, error) {
	p, ok := r.properties[propertyID]
	if !ok || p.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	delete(r.properties, propertyID)
	return p, nil
}
