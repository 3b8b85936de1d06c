package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment representa um comentário de um usuário em um blog.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	BlogID    primitive.ObjectID `bson:"blog_id" json:"blog_id"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CommentWithTitle é o read model da listagem por blog:
// o comentário acrescido do título do blog ($lookup em blogs).
type CommentWithTitle struct {
	Comment `bson:",inline"`
	Title   string `bson:"title" json:"title"`
}
