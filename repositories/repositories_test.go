package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-platform/query"
)

func TestSearchFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, searchFilter(nil))

	assert.Equal(t,
		bson.M{"name": primitive.Regex{Pattern: `a\.b`, Options: "i"}},
		searchFilter(map[string]string{"name": "a.b"}),
	)

	assert.Equal(t,
		bson.M{"$or": []bson.M{
			{"email": primitive.Regex{Pattern: "x", Options: "i"}},
			{"login": primitive.Regex{Pattern: "bo", Options: "i"}},
		}},
		searchFilter(map[string]string{"login": "bo", "email": "x"}),
	)
}

func TestFindOptions(t *testing.T) {
	opts := findOptions(query.ListQuery{PageNumber: 3, PageSize: 5, SortBy: "websiteUrl", SortDirection: query.Asc})
	assert.Equal(t, int64(10), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "website_url", Value: 1}, {Key: "_id", Value: 1}}, opts.Sort)

	opts = findOptions(query.ListQuery{PageNumber: 1, PageSize: 10, SortBy: "unknown", SortDirection: query.Desc})
	assert.Equal(t, bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}, opts.Sort)
}

func TestDuplicateKeyError(t *testing.T) {
	dup := func(index string) error {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: "E11000 duplicate key error collection: blog_platform.users index: " + index + " dup key",
		}}}
	}

	assert.ErrorIs(t, duplicateKeyError(dup("uniq_email")), ErrDuplicateEmail)
	assert.ErrorIs(t, duplicateKeyError(dup("uniq_login")), ErrDuplicateLogin)

	other := errors.New("boom")
	assert.Equal(t, other, duplicateKeyError(other))
}
