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

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(d *mongo.Database) *CommentRepository {
	return &CommentRepository{col: d.Collection(db.CollectionComments)}
}

func (r *CommentRepository) Insert(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *CommentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	return findOne[models.Comment](ctx, r.col, bson.M{"_id": id})
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	return updateByID(ctx, r.col, id, bson.M{"content": content})
}

func (r *CommentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.col, id)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID primitive.ObjectID, q query.ListQuery) ([]models.Comment, int64, error) {
	return findPage[models.Comment](ctx, r.col, bson.M{"post_id": postID}, q)
}

func (r *CommentRepository) DeleteAll(ctx context.Context) error {
	return deleteAll(ctx, r.col)
}
