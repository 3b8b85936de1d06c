package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Users implementa UserStore sobre a coleção "users".
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

func (s *Users) Create(ctx context.Context, user models.User) (*models.User, error) {
	const op = "store/users/Create"

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}
	user.ID = oid
	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	const op = "store/users/FindByID"

	var user models.User
	if err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "store/users/FindByEmail"

	var user models.User
	if err := s.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

func (s *Users) ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error) {
	const op = "store/users/ExistsByNameOrEmail"

	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "email", Value: email}},
	}}}

	n, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}

func (s *Users) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	const op = "store/users/SetRefreshToken"

	res, err := s.col.UpdateByID(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "refresh_token", Value: token},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Users) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	const op = "store/users/ClearRefreshToken"

	res, err := s.col.UpdateByID(ctx, id, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "refresh_token", Value: 1}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Users) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	const op = "store/users/UpdatePassword"

	res, err := s.col.UpdateByID(ctx, id, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "password", Value: passwordHash},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Users) UpdateAccount(ctx context.Context, id primitive.ObjectID, name, email string) (*models.User, error) {
	const op = "store/users/UpdateAccount"

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "email", Value: email},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	var user models.User
	err := s.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		findOneAndUpdateAfter()).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}
