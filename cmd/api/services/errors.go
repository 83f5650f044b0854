package services

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-platform/repositories"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrForbidden        = errors.New("forbidden")
	ErrEmailNotUnique   = errors.New("email should be unique")
	ErrLoginNotUnique   = errors.New("login should be unique")
	// ErrInvalidConfirmationCode 는 없는 코드, 만료된 코드, 이미 확인된 코드에 공통으로 쓰인다.
	ErrInvalidConfirmationCode = errors.New("confirmation code is incorrect, expired or already applied")
)

// parseID 는 경로의 id 를 ObjectID 로 바꾼다. 형식이 틀린 id 는 존재하지 않는 것으로 취급한다.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

// translate 는 저장소 오류를 서비스 오류로 옮긴다.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrDuplicateEmail):
		return ErrEmailNotUnique
	case errors.Is(err, repositories.ErrDuplicateLogin):
		return ErrLoginNotUnique
	}
	return err
}

// now 는 Mongo 가 저장하는 밀리초 정밀도에 맞춘 현재 UTC 시각이다.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
