package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog represents a blog owned by the platform
// Collection: blogs
type Blog struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	WebsiteURL   string             `bson:"website_url" json:"website_url"`
	IsMembership bool               `bson:"is_membership" json:"is_membership"`
}

// BlogFields 는 생성/수정 시 클라이언트가 바꿀 수 있는 필드 묶음이다.
type BlogFields struct {
	Name        string
	Description string
	WebsiteURL  string
}
