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

// Likes implementa LikeStore sobre a coleção "likes".
type Likes struct {
	col *mongo.Collection
}

func NewLikes(db *mongo.Database) *Likes {
	return &Likes{col: db.Collection("likes")}
}

func (s *Likes) findOne(ctx context.Context, op string, filter bson.D) (*models.Like, error) {
	var like models.Like
	if err := s.col.FindOne(ctx, filter).Decode(&like); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &like, nil
}

func (s *Likes) insert(ctx context.Context, op string, like models.Like) (*models.Like, error) {
	like.CreatedAt = time.Now().UTC()

	res, err := s.col.InsertOne(ctx, like)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}
	like.ID = oid
	return &like, nil
}

func (s *Likes) delete(ctx context.Context, op string, filter bson.D) error {
	res, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

func blogLikeFilter(blogID, userID primitive.ObjectID) bson.D {
	return bson.D{{Key: "blog_id", Value: blogID}, {Key: "liked_by", Value: userID}}
}

func commentLikeFilter(commentID, userID primitive.ObjectID) bson.D {
	return bson.D{{Key: "comment_id", Value: commentID}, {Key: "liked_by", Value: userID}}
}

func (s *Likes) FindBlogLike(ctx context.Context, blogID, userID primitive.ObjectID) (*models.Like, error) {
	return s.findOne(ctx, "store/likes/FindBlogLike", blogLikeFilter(blogID, userID))
}

func (s *Likes) CreateBlogLike(ctx context.Context, blogID, userID primitive.ObjectID) (*models.Like, error) {
	return s.insert(ctx, "store/likes/CreateBlogLike", models.Like{BlogID: blogID, LikedBy: userID})
}

func (s *Likes) DeleteBlogLike(ctx context.Context, blogID, userID primitive.ObjectID) error {
	return s.delete(ctx, "store/likes/DeleteBlogLike", blogLikeFilter(blogID, userID))
}

func (s *Likes) FindCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (*models.Like, error) {
	return s.findOne(ctx, "store/likes/FindCommentLike", commentLikeFilter(commentID, userID))
}

func (s *Likes) CreateCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) (*models.Like, error) {
	return s.insert(ctx, "store/likes/CreateCommentLike", models.Like{CommentID: commentID, LikedBy: userID})
}

func (s *Likes) DeleteCommentLike(ctx context.Context, commentID, userID primitive.ObjectID) error {
	return s.delete(ctx, "store/likes/DeleteCommentLike", commentLikeFilter(commentID, userID))
}

// likedPipeline agrupa os likes do usuário por entidade, conta, junta o
// documento da entidade e ordena por contagem decrescente.
func likedPipeline(userID primitive.ObjectID, idField, from, as string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "liked_by", Value: userID},
			{Key: idField, Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: idField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: "$" + as}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + idField},
			{Key: "number_of_likes", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: as, Value: bson.D{{Key: "$first", Value: "$" + as}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: idField, Value: "$_id"},
			{Key: "number_of_likes", Value: 1},
			{Key: as, Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "number_of_likes", Value: -1}}}},
	}
}

func (s *Likes) LikedBlogs(ctx context.Context, userID primitive.ObjectID) ([]models.LikedBlog, error) {
	const op = "store/likes/LikedBlogs"

	cur, err := s.col.Aggregate(ctx, likedPipeline(userID, "blog_id", "blogs", "liked_blog"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.LikedBlog
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *Likes) LikedComments(ctx context.Context, userID primitive.ObjectID) ([]models.LikedComment, error) {
	const op = "store/likes/LikedComments"

	cur, err := s.col.Aggregate(ctx, likedPipeline(userID, "comment_id", "comments", "liked_comment"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.LikedComment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
