package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-platform/models"
	"blog-platform/query"
)

// 서비스가 의존하는 저장소 계약. repositories(Mongo) 와 repositories/memory 가 구현한다.

type BlogRepository interface {
	Insert(ctx context.Context, b *models.Blog) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	Update(ctx context.Context, id primitive.ObjectID, f models.BlogFields) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, q query.ListQuery) ([]models.Blog, int64, error)
	DeleteAll(ctx context.Context) error
}

type PostRepository interface {
	Insert(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, f models.PostFields) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, blogID *primitive.ObjectID, q query.ListQuery) ([]models.Post, int64, error)
	DeleteAll(ctx context.Context) error
}

type CommentRepository interface {
	Insert(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByPost(ctx context.Context, postID primitive.ObjectID, q query.ListQuery) ([]models.Comment, int64, error)
	DeleteAll(ctx context.Context) error
}

type UserRepository interface {
	Insert(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByLoginOrEmail(ctx context.Context, loginOrEmail string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	FindByConfirmationCode(ctx context.Context, code string) (*models.User, error)
	MarkConfirmed(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, q query.ListQuery) ([]models.User, int64, error)
	DeleteAll(ctx context.Context) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}
