package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a post published under a blog
// Collection: posts
//
// blog_name 은 작성/수정 시점의 블로그 이름 스냅샷이다. 블로그 이름이 바뀌어도 따라가지 않는다.
type Post struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	Title            string             `bson:"title" json:"title"`
	ShortDescription string             `bson:"short_description" json:"short_description"`
	Content          string             `bson:"content" json:"content"`
	BlogID           primitive.ObjectID `bson:"blog_id" json:"blog_id"`
	BlogName         string             `bson:"blog_name" json:"blog_name"`
}

// PostFields 는 생성/수정 시 저장되는 필드 묶음이다. BlogName 은 서비스가 채운다.
type PostFields struct {
	Title            string
	ShortDescription string
	Content          string
	BlogID           primitive.ObjectID
	BlogName         string
}
