package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentatorInfo 는 작성자 식별자와 작성 시점의 login 스냅샷이다.
type CommentatorInfo struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserLogin string             `bson:"user_login" json:"user_login"`
}

// Comment represents a user comment on a post
// Collection: comments
type Comment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	Content         string             `bson:"content" json:"content"`
	PostID          primitive.ObjectID `bson:"post_id" json:"post_id"`
	CommentatorInfo CommentatorInfo    `bson:"commentator_info" json:"commentator_info"`
}
