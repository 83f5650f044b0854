package repositories

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-platform/db"
	"blog-platform/query"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicateLogin = errors.New("duplicate login")
	ErrDuplicateEmail = errors.New("duplicate email")
)

// sortFields 는 API 의 sortBy 값을 bson 필드 이름으로 옮긴다.
var sortFields = map[string]string{
	"createdAt":        "created_at",
	"name":             "name",
	"description":      "description",
	"websiteUrl":       "website_url",
	"title":            "title",
	"shortDescription": "short_description",
	"content":          "content",
	"blogId":           "blog_id",
	"blogName":         "blog_name",
	"login":            "login",
	"email":            "email",
}

// findOptions 는 정렬 -> skip -> limit 순서의 페이지 조회 옵션을 만든다.
// _id 를 보조 정렬 키로 두어 같은 값끼리의 순서를 고정한다.
func findOptions(q query.ListQuery) *options.FindOptions {
	dir := -1
	if q.SortDirection == query.Asc {
		dir = 1
	}
	field, ok := sortFields[q.SortBy]
	if !ok {
		field = "created_at"
	}
	return options.Find().
		SetSkip(q.Skip()).
		SetLimit(int64(q.PageSize)).
		SetSort(bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}})
}

// containsRegex 는 대소문자를 무시하는 부분 문자열 매칭 정규식이다.
func containsRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// searchFilter 는 검색어들을 OR 로 묶는다. 검색어가 없으면 모든 문서와 매칭된다.
func searchFilter(search map[string]string) bson.M {
	if len(search) == 0 {
		return bson.M{}
	}
	fields := make([]string, 0, len(search))
	for f := range search {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: containsRegex(search[f])})
	}
	if len(or) == 1 {
		return or[0]
	}
	return bson.M{"$or": or}
}

func findPage[T any](ctx context.Context, col *mongo.Collection, filter bson.M, q query.ListQuery) ([]T, int64, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	// 마지막 페이지를 넘으면 조회 없이 빈 결과를 돌려준다.
	if q.Skip() >= total {
		return []T{}, total, nil
	}

	cur, err := col.Find(ctx, filter, findOptions(q))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	results := make([]T, 0, q.PageSize)
	for cur.Next(ctx) {
		var doc T
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		results = append(results, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	if err := col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func updateByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID, set bson.M) error {
	res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id primitive.ObjectID) error {
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteAll(ctx context.Context, col *mongo.Collection) error {
	_, err := col.DeleteMany(ctx, bson.M{})
	return err
}

// duplicateKeyError 는 유니크 인덱스 위반을 인덱스 이름으로 판별해 도메인 오류로 바꾼다.
func duplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, db.IndexUniqEmail):
		return ErrDuplicateEmail
	case strings.Contains(msg, db.IndexUniqLogin):
		return ErrDuplicateLogin
	}
	return err
}
