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

// Comments implementa CommentStore sobre a coleção "comments".
type Comments struct {
	col *mongo.Collection
}

func NewComments(db *mongo.Database) *Comments {
	return &Comments{col: db.Collection("comments")}
}

func (s *Comments) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	const op = "store/comments/Create"

	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}
	comment.ID = oid
	return &comment, nil
}

func (s *Comments) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	const op = "store/comments/FindByID"

	var comment models.Comment
	if err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &comment, nil
}

func (s *Comments) Update(ctx context.Context, id primitive.ObjectID, text string) (*models.Comment, error) {
	const op = "store/comments/Update"

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "comment", Value: text},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}

	var comment models.Comment
	err := s.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		findOneAndUpdateAfter()).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &comment, nil
}

func (s *Comments) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "store/comments/Delete"

	res, err := s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListByBlog devolve os comentários do blog com o título denormalizado
// ($match -> $lookup blogs -> $unwind -> $project).
func (s *Comments) ListByBlog(ctx context.Context, blogID primitive.ObjectID) ([]models.CommentWithTitle, error) {
	const op = "store/comments/ListByBlog"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "blog_id", Value: blogID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "blogs"},
			{Key: "localField", Value: "blog_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "blog"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{{Key: "title", Value: 1}}}},
			}},
		}}},
		{{Key: "$unwind", Value: "$blog"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "blog_id", Value: 1},
			{Key: "comment", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
			{Key: "title", Value: "$blog.title"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
	}

	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.CommentWithTitle
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
