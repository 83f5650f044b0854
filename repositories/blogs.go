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

type BlogRepository struct {
	col *mongo.Collection
}

func NewBlogRepository(d *mongo.Database) *BlogRepository {
	return &BlogRepository{col: d.Collection(db.CollectionBlogs)}
}

// Insert stores a new blog. ID is generated when empty.
func (r *BlogRepository) Insert(ctx context.Context, b *models.Blog) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, b)
	return err
}

// FindByID returns ErrNotFound when no blog has the given id.
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return findOne[models.Blog](ctx, r.col, bson.M{"_id": id})
}

func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, f models.BlogFields) error {
	return updateByID(ctx, r.col, id, bson.M{
		"name":        f.Name,
		"description": f.Description,
		"website_url": f.WebsiteURL,
	})
}

func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

// List returns one page of blogs plus the total matching the name search.
func (r *BlogRepository) List(ctx context.Context, q query.ListQuery) ([]models.Blog, int64, error) {
	return findPage[models.Blog](ctx, r.col, searchFilter(q.Search), q)
}

func (r *BlogRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.col)
}
