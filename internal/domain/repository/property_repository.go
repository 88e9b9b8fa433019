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

type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id string) (*model.Property, error)
	FindBySlug(ctx context.Context, slug string) (*model.Property, error)
	FindAll(ctx context.Context) ([]model.Property, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Property, error)
	FindFirstByOwner(ctx context.Context, ownerID string) (*model.Property, error)
	FindOwned(ctx context.Context, ownerID, propertyID string) (*model.Property, error)
	Update(ctx context.Context, id string, upd model.PropertyUpdate) (*model.Property, error)
	UpdateOwned(ctx context.Context, ownerID, propertyID string, upd model.PropertyUpdate) (*model.Property, error)
	DeleteOwned(ctx context.Context, ownerID, propertyID string) (*model.Property, error)
}

type mongoPropertyRepository struct {
	coll *mongo.Collection
}

func NewMongoPropertyRepository(db *mongo.Database) PropertyRepository {
	return &mongoPropertyRepository{coll: db.Collection(database.PropertiesCollection)}
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *model.Property) error {
	if _, err := r.coll.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("mongoPropertyRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoPropertyRepository) FindByID(ctx context.Context, id string) (*model.Property, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "FindByID")
}

func (r *mongoPropertyRepository) FindBySlug(ctx context.Context, slug string) (*model.Property, error) {
	return r.findOne(ctx, bson.M{"slug": slug}, "FindBySlug")
}

func (r *mongoPropertyRepository) FindFirstByOwner(ctx context.Context, ownerID string) (*model.Property, error) {
	return r.findOne(ctx, bson.M{"owner_id": ownerID}, "FindFirstByOwner")
}

func (r *mongoPropertyRepository) FindOwned(ctx context.Context, ownerID, propertyID string) (*model.Property, error) {
	return r.findOne(ctx, bson.M{"_id": propertyID, "owner_id": ownerID}, "FindOwned")
}

func (r *mongoPropertyRepository) findOne(ctx context.Context, filter bson.M, op string) (*model.Property, error) {
	property := &model.Property{}
	err := r.coll.FindOne(ctx, filter).Decode(property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoPropertyRepository.%s: %w", op, err)
	}
	return property, nil
}

func (r *mongoPropertyRepository) FindAll(ctx context.Context) ([]model.Property, error) {
	return r.findMany(ctx, bson.M{}, "FindAll")
}

func (r *mongoPropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	return r.findMany(ctx, bson.M{"owner_id": ownerID}, "FindByOwner")
}

func (r *mongoPropertyRepository) findMany(ctx context.Context, filter bson.M, op string) ([]model.Property, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongoPropertyRepository.%s: %w", op, err)
	}
	properties := []model.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("mongoPropertyRepository.%s: %w", op, err)
	}
	return properties, nil
}

func (r *mongoPropertyRepository) Update(ctx context.Context, id string, upd model.PropertyUpdate) (*model.Property, error) {
	return r.update(ctx, bson.M{"_id": id}, upd, "Update")
}

func (r *mongoPropertyRepository) UpdateOwned(ctx context.Context, ownerID, propertyID string, upd model.PropertyUpdate) (*model.Property, error) {
	return r.update(ctx, bson.M{"_id": propertyID, "owner_id": ownerID}, upd, "UpdateOwned")
}

func (r *mongoPropertyRepository) update(ctx context.Context, filter bson.M, upd model.PropertyUpdate, op string) (*model.Property, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Rent != nil {
		set["rent"] = *upd.Rent
	}
	if upd.Contact != nil {
		set["contact"] = *upd.Contact
	}
	if upd.Area != nil {
		set["area"] = *upd.Area
	}
	if upd.Place != nil {
		set["place"] = *upd.Place
	}
	if upd.Amenities != nil {
		set["amenities"] = *upd.Amenities
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}

	property := &model.Property{}
	err := r.coll.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoPropertyRepository.%s: %w", op, err)
	}
	return property, nil
}

func (r *mongoPropertyRepository) DeleteOwned(ctx context.Context, ownerID, propertyID string) (*model.Property, error) {
	property := &model.Property{}
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": propertyID, "owner_id": ownerID}).Decode(property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoPropertyRepository.DeleteOwned: %w", err)
	}
	return property, nil
}
