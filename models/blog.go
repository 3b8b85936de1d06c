package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog representa uma postagem pertencente a um usuário.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// BlogOwner é a projeção do dono usada nas listagens ($lookup em users).
type BlogOwner struct {
	Name string `bson:"name" json:"name"`
}

// BlogWithOwner é o read model da listagem por usuário.
type BlogWithOwner struct {
	Blog  `bson:",inline"`
	Owner BlogOwner `bson:"owner" json:"owner"`
}
