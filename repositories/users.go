package repositories

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-platform/db"
	"blog-platform/models"
	"blog-platform/query"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(d *mongo.Database) *UserRepository {
	return &UserRepository{col: d.Collection(db.CollectionUsers)}
}

// Insert stores a new user.
// 유니크 인덱스 위반은 ErrDuplicateEmail / ErrDuplicateLogin 으로 반환된다.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return duplicateKeyError(err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, r.col, bson.M{"_id": id})
}

// FindByLoginOrEmail 은 login 은 정확히, email 은 대소문자 무시로 비교한다.
func (r *UserRepository) FindByLoginOrEmail(ctx context.Context, loginOrEmail string) (*models.User, error) {
	return findOne[models.User](ctx, r.col, bson.M{"$or": []bson.M{
		{"login": loginOrEmail},
		{"email": strings.ToLower(loginOrEmail)},
	}})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *UserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return r.exists(ctx, bson.M{"login": login})
}

func (r *UserRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UserRepository) FindByConfirmationCode(ctx context.Context, code string) (*models.User, error) {
	return findOne[models.User](ctx, r.col, bson.M{"email_confirmation.confirmation_code": code})
}

func (r *UserRepository) MarkConfirmed(ctx context.Context, id primitive.ObjectID) error {
	return updateByID(ctx, r.col, id, bson.M{"email_confirmation.is_confirmed": true})
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

// List 는 searchLoginTerm / searchEmailTerm 을 OR 로 묶어 조회한다.
func (r *UserRepository) List(ctx context.Context, q query.ListQuery) ([]models.User, int64, error) {
	return findPage[models.User](ctx, r.col, searchFilter(q.Search), q)
}

func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.col)
}
