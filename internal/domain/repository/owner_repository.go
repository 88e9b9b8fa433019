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

type OwnerRepository interface {
	Create(ctx context.Context, owner *model.Owner) error
	FindByID(ctx context.Context, id string) (*model.Owner, error)
	FindByEmail(ctx context.Context, email string) (*model.Owner, error)
	FindAll(ctx context.Context) ([]model.Owner, error)
	Update(ctx context.Context, id string, upd model.OwnerUpdate) (*model.Owner, error)
	Delete(ctx context.Context, id string) error
	SetContactRequest(ctx context.Context, ownerID, tenantID string) error
	ClearContactRequest(ctx context.Context, ownerID string) error
}

type mongoOwnerRepository struct {
	coll *mongo.Collection
}

func NewMongoOwnerRepository(db *mongo.Database) OwnerRepository {
	return &mongoOwnerRepository{coll: db.Collection(database.OwnersCollection)}
}

func (r *mongoOwnerRepository) Create(ctx context.Context, owner *model.Owner) error {
	if _, err := r.coll.InsertOne(ctx, owner); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("email already registered: %w", common.ErrValidation)
		}
		return fmt.Errorf("mongoOwnerRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoOwnerRepository) FindByID(ctx context.Context, id string) (*model.Owner, error) {
	owner := &model.Owner{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(owner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoOwnerRepository.FindByID: %w", err)
	}
	return owner, nil
}

func (r *mongoOwnerRepository) FindByEmail(ctx context.Context, email string) (*model.Owner, error) {
	owner := &model.Owner{}
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(owner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoOwnerRepository.FindByEmail: %w", err)
	}
	return owner, nil
}

func (r *mongoOwnerRepository) FindAll(ctx context.Context) ([]model.Owner, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongoOwnerRepository.FindAll: %w", err)
	}
	owners := []model.Owner{}
	if err := cursor.All(ctx, &owners); err != nil {
		return nil, fmt.Errorf("mongoOwnerRepository.FindAll: %w", err)
	}
	return owners, nil
}

func (r *mongoOwnerRepository) Update(ctx context.Context, id string, upd model.OwnerUpdate) (*model.Owner, error) {
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

	owner := &model.Owner{}
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(owner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("email already registered: %w", common.ErrValidation)
		}
		return nil, fmt.Errorf("mongoOwnerRepository.Update: %w", err)
	}
	return owner, nil
}

// Delete exists only to roll back the role record when the second write of a
// registration fails; no endpoint deletes owners.
func (r *mongoOwnerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoOwnerRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoOwnerRepository) SetContactRequest(ctx context.Context, ownerID, tenantID string) error {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": ownerID},
		bson.M{"$set": bson.M{"contact_requested_by": tenantID, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("mongoOwnerRepository.SetContactRequest: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoOwnerRepository) ClearContactRequest(ctx context.Context, ownerID string) error {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": ownerID},
		bson.M{
			"$unset": bson.M{"contact_requested_by": ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return fmt.Errorf("mongoOwnerRepository.ClearContactRequest: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
