package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-platform/db"
	"blog-platform/models"
	"blog-platform/query"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(d *mongo.Database) *PostRepository {
	return &PostRepository{col: d.Collection(db.CollectionPosts)}
}

// Insert stores a new post. ID is generated when empty.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// FindByID returns ErrNotFound when no post has the given id.
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	return findOne[models.Post](ctx, r.col, bson.M{"_id": id})
}

// Update overwrites the editable fields, including the blog_name snapshot.
func (r *PostRepository) Update(ctx context.Context, id primitive.ObjectID, f models.PostFields) error {
	return updateByID(ctx, r.col, id, bson.M{
		"title":             f.Title,
		"short_description": f.ShortDescription,
		"content":           f.Content,
		"blog_id":           f.BlogID,
		"blog_name":         f.BlogName,
	})
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

// List returns one page of posts. blogID 가 nil 이 아니면 해당 블로그의 포스트만 조회한다.
func (r *PostRepository) List(ctx context.Context, blogID *primitive.ObjectID, q query.ListQuery) ([]models.Post, int64, error) {
	filter := bson.M{}
	if blogID != nil {
		filter["blog_id"] = *blogID
	}
	return findPage[models.Post](ctx, r.col, filter, q)
}

func (r *PostRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.col)
}
