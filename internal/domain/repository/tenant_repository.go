package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"house_rent/internal/common"
	"house_rent/internal/domain/model"
	"house_rent/internal/platform/database"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *model.Tenant) error
	FindByID(ctx context.Context, id string) (*model.Tenant, error)
	FindByEmail(ctx context.Context, email string) (*model.Tenant, error)
	FindAll(ctx context.Context) ([]model.Tenant, error)
	Update(ctx context.Context, id string, upd model.TenantUpdate) (*model.Tenant, error)
	Delete(ctx context.Context, id string) error
}

type mongoTenantRepository struct {
	coll *mongo.Collection
}

func NewMongoTenantRepository(db *mongo.Database) TenantRepository {
	return &mongoTenantRepository{coll: db.Collection(database.TenantsCollection)}
}

func (r *mongoTenantRepository) Create(ctx context.Context, tenant *model.Tenant) error {
	if _, err := r.coll.InsertOne(ctx, tenant); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered: %w", common.ErrValidation)
		}
		return fmt.Errorf("mongoTenantRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoTenantRepository) FindByID(ctx context.Context, id string) (*model.Tenant, error) {
	tenant := &model.Tenant{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(tenant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoTenantRepository.FindByID: %w", err)
	}
	return tenant, nil
}

func (r *mongoTenantRepository) FindByEmail(ctx context.Context, email string) (*model.Tenant, error) {
	tenant := &model.Tenant{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(tenant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoTenantRepository.FindByEmail: %w", err)
	}
	return tenant, nil
}

func (r *mongoTenantRepository) FindAll(ctx context.Context) ([]model.Tenant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongoTenantRepository.FindAll: %w", err)
	}
	tenants := []model.Tenant{}
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, fmt.Errorf("mongoTenantRepository.FindAll: %w", err)
	}
	return tenants, nil
}

func (r *mongoTenantRepository) Update(ctx context.Context, id string, upd model.TenantUpdate) (*model.Tenant, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.HashedPassword != nil {
		set["hashed_password"] = *upd.HashedPassword
	}

	tenant := &model.Tenant{}
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(tenant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email already registered: %w", common.ErrValidation)
		}
		return nil, fmt.Errorf("mongoTenantRepository.Update: %w", err)
	}
	return tenant, nil
}

// Delete exists only to roll back the role record when the second write of a
// registration fails; no endpoint deletes tenants.
func (r *mongoTenantRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoTenantRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
