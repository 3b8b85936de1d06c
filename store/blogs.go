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

// Blogs implementa BlogStore sobre a coleção "blogs".
type Blogs struct {
	col *mongo.Collection
}

func NewBlogs(db *mongo.Database) *Blogs {
	return &Blogs{col: db.Collection("blogs")}
}

func (s *Blogs) Create(ctx context.Context, blog models.Blog) (*models.Blog, error) {
	const op = "store/blogs/Create"

	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}
	blog.ID = oid
	return &blog, nil
}

func (s *Blogs) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	const op = "store/blogs/FindByID"

	var blog models.Blog
	if err := s.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &blog, nil
}

// Update aplica somente os campos enviados (string vazia = não alterar).
func (s *Blogs) Update(ctx context.Context, id primitive.ObjectID, title, content string) (*models.Blog, error) {
	const op = "store/blogs/Update"

	set := bson.D{{Key: "updated_at", Value: time.Now().UTC()}}
	if title != "" {
		set = append(set, bson.E{Key: "title", Value: title})
	}
	if content != "" {
		set = append(set, bson.E{Key: "content", Value: content})
	}

	var blog models.Blog
	err := s.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}}, findOneAndUpdateAfter()).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &blog, nil
}

func (s *Blogs) Delete(ctx context.Context, id primitive.ObjectID) error {
	const op = "store/blogs/Delete"

	res, err := s.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListByUser devolve os blogs do usuário com o nome do dono denormalizado
// ($match -> $lookup users -> $addFields first owner).
func (s *Blogs) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.BlogWithOwner, error) {
	const op = "store/blogs/ListByUser"

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{{Key: "name", Value: 1}}}},
			}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
	}

	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.BlogWithOwner
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
