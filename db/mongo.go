package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"blog-platform/config"
	"blog-platform/internal/logger"
)

const (
	CollectionBlogs    = "blogs"
	CollectionPosts    = "posts"
	CollectionComments = "comments"
	CollectionUsers    = "users"
)

// 유니크 인덱스 이름. 중복 키 오류가 어느 필드에서 났는지 판별할 때 쓴다.
const (
	IndexUniqLogin = "uniq_login"
	IndexUniqEmail = "uniq_email"
)

const connectTimeout = 10 * time.Second

// Connect 는 Mongo 에 연결하고 ping 으로 확인한 뒤 인덱스를 보장한다.
// 반환된 client 의 Disconnect 는 호출자가 책임진다.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	database := cl.Database(cfg.DBName)
	if err := EnsureIndexes(ctx, database); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo ensure indexes: %w", err)
	}
	logger.InfoWithFields("MongoDB connected and indexes ensured", logger.Fields{"db_name": cfg.DBName})
	return cl, database, nil
}

// Pinger 는 헬스 체크용으로 DB 연결을 확인한다.
type Pinger struct {
	Client *mongo.Client
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx, readpref.Primary())
}

func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		// users: login/email 유니크. email 은 소문자로 저장되므로 대소문자 무시 유니크와 같다.
		CollectionUsers: {
			{
				Keys:    bson.D{{Key: "login", Value: 1}},
				Options: options.Index().SetName(IndexUniqLogin).SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName(IndexUniqEmail).SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "email_confirmation.confirmation_code", Value: 1}},
				Options: options.Index().SetName("idx_confirmation_code"),
			},
		},
		CollectionBlogs: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_created_at_desc"),
			},
		},
		CollectionPosts: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "blog_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_blog_id_created_at"),
			},
		},
		CollectionComments: {
			{
				Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_post_id_created_at"),
			},
		},
	}

	for col, models := range indexes {
		if _, err := d.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("%s: %w", col, err)
		}
	}
	return nil
}
