package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Otp é o código pendente de reset de senha — no máximo um por usuário
// (upsert por user_id). Verified vira true quando o código apresentado bate;
// o registro é apagado ao consumir o reset ou ao constatar expiração.
type Otp struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Code      string             `bson:"otp" json:"-"`
	Verified  bool               `bson:"is_verified" json:"is_verified"`
	CreatedAt time.Time          `bson:"timestamp" json:"timestamp"`
}
