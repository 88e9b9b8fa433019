package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"house_rent/internal/common"
	"house_rent/internal/domain/model"
	"house_rent/internal/platform/database"
)

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	FindByUsernameAndRole(ctx context.Context, username, role string) (*model.Account, error)
	FindByID(ctx context.Context, id string) (*model.Account, error)
}

type mongoAccountRepository struct {
	coll *mongo.Collection
}

func NewMongoAccountRepository(db *mongo.Database) AccountRepository {
	return &mongoAccountRepository{coll: db.Collection(database.AccountsCollection)}
}

func (r *mongoAccountRepository) Create(ctx context.Context, account *model.Account) error {
	if _, err := r.coll.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("account already exists: %w", common.ErrValidation)
		}
		return fmt.Errorf("mongoAccountRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoAccountRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*model.Account, error) {
	account := &model.Account{}
	err := r.coll.FindOne(ctx, bson.M{"username": username, "role": role}).Decode(account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoAccountRepository.FindByUsernameAndRole: %w", err)
	}
	return account, nil
}

func (r *mongoAccountRepository) FindByID(ctx context.Context, id string) (*model.Account, error) {
	account := &model.Account{}
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoAccountRepository.FindByID: %w", err)
	}
	return account, nil
}
