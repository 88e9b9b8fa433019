package service

import (
	"context"
	"errors"
	"time"

	"house_rent/internal/common"
	"house_rent/internal/domain/model"
)

// In-memory repository fakes. They mirror the driver behavior the services
// rely on: ErrNotFound sentinels and the unique-email rejection the mongo
// index would produce.

type fakeAccountRepo struct {
	accounts   map[string]*model.Account
	failCreate bool
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*model.Account{}}
}

func (r *fakeAccountRepo) Create(_ context.Context, account *model.Account) error {
	if r.failCreate {
		return errors.New("write concern error")
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *fakeAccountRepo) FindByUsernameAndRole(_ context.Context, username, role string) (*model.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username && a.Role == role {
			return a, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id string) (*model.Account, error) {
	if a, ok := r.accounts[id]; ok {
		return a, nil
	}
	return nil, common.ErrNotFound
}

type fakeOwnerRepo struct {
	owners map[string]*model.Owner
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: map[string]*model.Owner{}}
}

func (r *fakeOwnerRepo) Create(_ context.Context, owner *model.Owner) error {
	for _, o := range r.owners {
		if o.Email == owner.Email {
			return common.Errorf("email already registered: %w", common.ErrValidation)
		}
	}
	r.owners[owner.ID] = owner
	return nil
}

func (r *fakeOwnerRepo) FindByID(_ context.Context, id string) (*model.Owner, error) {
	if o, ok := r.owners[id]; ok {
		return o, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeOwnerRepo) FindByEmail(_ context.Context, email string) (*model.Owner, error) {
	for _, o := range r.owners {
		if o.Email == email {
			return o, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeOwnerRepo) FindAll(_ context.Context) ([]model.Owner, error) {
	out := []model.Owner{}
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOwnerRepo) Update(_ context.Context, id string, upd model.OwnerUpdate) (*model.Owner, error) {
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

func (r *fakeOwnerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.owners[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.owners, id)
	return nil
}

func (r *fakeOwnerRepo) SetContactRequest(_ context.Context, ownerID, tenantID string) error {
	o, ok := r.owners[ownerID]
	if !ok {
		return common.ErrNotFound
	}
	o.ContactRequestedBy = &tenantID
	return nil
}

func (r *fakeOwnerRepo) ClearContactRequest(_ context.Context, ownerID string) error {
	o, ok := r.owners[ownerID]
	if !ok {
		return common.ErrNotFound
	}
	o.ContactRequestedBy = nil
	return nil
}

type fakeTenantRepo struct {
	tenants map[string]*model.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{tenants: map[string]*model.Tenant{}}
}

func (r *fakeTenantRepo) Create(_ context.Context, tenant *model.Tenant) error {
	for _, t := range r.tenants {
		if t.Email == tenant.Email {
			return common.Errorf("email already registered: %w", common.ErrValidation)
		}
	}
	r.tenants[tenant.ID] = tenant
	return nil
}

func (r *fakeTenantRepo) FindByID(_ context.Context, id string) (*model.Tenant, error) {
	if t, ok := r.tenants[id]; ok {
		return t, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeTenantRepo) FindByEmail(_ context.Context, email string) (*model.Tenant, error) {
	for _, t := range r.tenants {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeTenantRepo) FindAll(_ context.Context) ([]model.Tenant, error) {
	out := []model.Tenant{}
	for _, t := range r.tenants {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTenantRepo) Update(_ context.Context, id string, upd model.TenantUpdate) (*model.Tenant, error) {
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

func (r *fakeTenantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tenants[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.tenants, id)
	return nil
}

type fakePropertyRepo struct {
	properties map[string]*model.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{properties: map[string]*model.Property{}}
}

func (r *fakePropertyRepo) Create(_ context.Context, property *model.Property) error {
	r.properties[property.ID] = property
	return nil
}

func (r *fakePropertyRepo) FindByID(_ context.Context, id string) (*model.Property, error) {
	if p, ok := r.properties[id]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakePropertyRepo) FindBySlug(_ context.Context, slug string) (*model.Property, error) {
	for _, p := range r.properties {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakePropertyRepo) FindAll(_ context.Context) ([]model.Property, error) {
	out := []model.Property{}
	for _, p := range r.properties {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePropertyRepo) FindByOwner(_ context.Context, ownerID string) ([]model.Property, error) {
	out := []model.Property{}
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) FindFirstByOwner(_ context.Context, ownerID string) (*model.Property, error) {
	for _, p := range r.properties {
		if p.OwnerID == ownerID {
			return p, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakePropertyRepo) FindOwned(_ context.Context, ownerID, propertyID string) (*model.Property, error) {
	if p, ok := r.properties[propertyID]; ok && p.OwnerID == ownerID {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakePropertyRepo) Update(_ context.Context, id string, upd model.PropertyUpdate) (*model.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return r.apply(p, upd), nil
}

func (r *fakePropertyRepo) UpdateOwned(_ context.Context, ownerID, propertyID string, upd model.PropertyUpdate) (*model.Property, error) {
	p, ok := r.properties[propertyID]
	if !ok || p.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	return r.apply(p, upd), nil
}

func (r *fakePropertyRepo) apply(p *model.Property, upd model.PropertyUpdate) *model.Property {
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

func (r *fakePropertyRepo) DeleteOwned(_ context.Context, ownerID, propertyID string) (*model.Property, error) {
	p, ok := r.properties[propertyID]
	if !ok || p.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	delete(r.properties, propertyID)
	return p, nil
}
