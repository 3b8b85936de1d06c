package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like registra um like de um usuário em um blog OU em um comentário
// (exatamente um dos dois campos fica preenchido).
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BlogID    primitive.ObjectID `bson:"blog_id,omitempty" json:"blog_id,omitempty"`
	CommentID primitive.ObjectID `bson:"comment_id,omitempty" json:"comment_id,omitempty"`
	LikedBy   primitive.ObjectID `bson:"liked_by" json:"liked_by"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// LikedBlog agrupa os likes de um blog curtido pelo usuário
// ($group por blog_id + $lookup do documento do blog).
type LikedBlog struct {
	BlogID        primitive.ObjectID `bson:"blog_id" json:"blog_id"`
	NumberOfLikes int64              `bson:"number_of_likes" json:"number_of_likes"`
	Blog          Blog               `bson:"liked_blog" json:"liked_blog"`
}

// LikedComment agrupa os likes de um comentário curtido pelo usuário.
type LikedComment struct {
	CommentID     primitive.ObjectID `bson:"comment_id" json:"comment_id"`
	NumberOfLikes int64              `bson:"number_of_likes" json:"number_of_likes"`
	Comment       Comment            `bson:"liked_comment" json:"liked_comment"`
}
