package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User representa uma conta no sistema.
// Password guarda apenas o hash bcrypt; RefreshToken espelha o refresh token
// ativo (no máximo um por usuário — login/refresh sobrescrevem, logout limpa).
// Nenhum dos dois sai em JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	RefreshToken string             `bson:"refresh_token,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
