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

// Otps implementa OtpStore sobre a coleção "otps".
// A unicidade por user_id (índice único) + upsert garante no máximo um
// código vivo por usuário sem lock em processo.
type Otps struct {
	col *mongo.Collection
}

func NewOtps(db *mongo.Database) *Otps {
	return &Otps{col: db.Collection("otps")}
}

func (s *Otps) Upsert(ctx context.Context, userID primitive.ObjectID, code string, issuedAt time.Time) error {
	const op = "store/otps/Upsert"

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "otp", Value: code},
		{Key: "is_verified", Value: false},
		{Key: "timestamp", Value: issuedAt.UTC()},
	}}}

	var otp models.Otp
	err := s.col.FindOneAndUpdate(ctx, bson.D{{Key: "user_id", Value: userID}},
		update, upsertAfter()).Decode(&otp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Otps) Find(ctx context.Context, userID primitive.ObjectID) (*models.Otp, error) {
	const op = "store/otps/Find"

	var otp models.Otp
	if err := s.col.FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&otp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &otp, nil
}

func (s *Otps) MarkVerified(ctx context.Context, userID primitive.ObjectID) error {
	const op = "store/otps/MarkVerified"

	res, err := s.col.UpdateOne(ctx, bson.D{{Key: "user_id", Value: userID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "is_verified", Value: true}}}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func (s *Otps) Delete(ctx context.Context, userID primitive.ObjectID) error {
	const op = "store/otps/Delete"

	if _, err := s.col.DeleteOne(ctx, bson.D{{Key: "user_id", Value: userID}}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
