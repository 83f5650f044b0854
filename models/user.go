package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailConfirmation 은 자가 가입한 사용자의 이메일 확인 상태다.
type EmailConfirmation struct {
	ConfirmationCode string    `bson:"confirmation_code" json:"confirmation_code"`
	ExpirationDate   time.Time `bson:"expiration_date" json:"expiration_date"`
	IsConfirmed      bool      `bson:"is_confirmed" json:"is_confirmed"`
}

// User represents a platform account
// Collection: users
//
// email 은 항상 소문자로 저장되므로 유니크 인덱스가 대소문자 무시 비교와 같다.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	Login             string             `bson:"login" json:"login"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"password_hash" json:"-"`
	EmailConfirmation EmailConfirmation  `bson:"email_confirmation" json:"email_confirmation"`
}
