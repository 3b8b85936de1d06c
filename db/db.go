package db

import (
	"context"
	"fmt"
	"log"

	"blogapi/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect abre a conexão com o MongoDB, valida com um ping e garante os
// índices que as invariantes do domínio assumem.
func Connect(ctx context.Context, cfg config.Configuration) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	database := client.Database(cfg.DbName)
	if err := ensureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	log.Printf("mongo connected, db=%s", cfg.DbName)
	return client, database, nil
}

// ensureIndexes:
//   - users: email único (Conflict no cadastro é detectado pelo driver)
//   - otps: user_id único (upsert atômico mantém um código por usuário)
//   - likes/comments/blogs: índices de consulta
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"otps": {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		"blogs": {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "blog_id", Value: 1}, {Key: "created_at", Value: 1}}},
		},
		"likes": {
			{Keys: bson.D{{Key: "liked_by", Value: 1}}},
			{Keys: bson.D{{Key: "blog_id", Value: 1}, {Key: "liked_by", Value: 1}}},
			{Keys: bson.D{{Key: "comment_id", Value: 1}, {Key: "liked_by", Value: 1}}},
		},
	}

	for col, models := range indexes {
		if _, err := database.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongo ensure indexes (%s): %w", col, err)
		}
	}
	return nil
}
