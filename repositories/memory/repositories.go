package memory

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-platform/models"
	"blog-platform/query"
	"blog-platform/repositories"
)

type BlogRepository struct {
	s *store[models.Blog]
}

func NewBlogRepository() *BlogRepository {
	return &BlogRepository{s: newStore(
		func(b models.Blog) primitive.ObjectID { return b.ID },
		func(b models.Blog, field string) any {
			switch field {
			case "name":
				return b.Name
			case "description":
				return b.Description
			case "websiteUrl":
				return b.WebsiteURL
			}
			return b.CreatedAt
		},
	)}
}

func (r *BlogRepository) Insert(_ context.Context, b *models.Blog) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	r.s.put(*b)
	return nil
}

func (r *BlogRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	b, err := r.s.get(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) Update(_ context.Context, id primitive.ObjectID, f models.BlogFields) error {
	return r.s.update(id, func(b *models.Blog) {
		b.Name = f.Name
		b.Description = f.Description
		b.WebsiteURL = f.WebsiteURL
	})
}

func (r *BlogRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.s.remove(id)
}

func (r *BlogRepository) List(_ context.Context, q query.ListQuery) ([]models.Blog, int64, error) {
	items, total := r.s.page(q, func(b models.Blog) bool {
		return matchesAny(q.Search, func(string) string { return b.Name })
	})
	return items, total, nil
}

func (r *BlogRepository) DeleteAll(context.Context) error {
	r.s.clear()
	return nil
}

type PostRepository struct {
	s *store[models.Post]
}

func NewPostRepository() *PostRepository {
	return &PostRepository{s: newStore(
		func(p models.Post) primitive.ObjectID { return p.ID },
		func(p models.Post, field string) any {
			switch field {
			case "title":
				return p.Title
			case "shortDescription":
				return p.ShortDescription
			case "content":
				return p.Content
			case "blogId":
				return p.BlogID.Hex()
			case "blogName":
				return p.BlogName
			}
			return p.CreatedAt
		},
	)}
}

func (r *PostRepository) Insert(_ context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.s.put(*p)
	return nil
}

func (r *PostRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, err := r.s.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Update(_ context.Context, id primitive.ObjectID, f models.PostFields) error {
	return r.s.update(id, func(p *models.Post) {
		p.Title = f.Title
		p.ShortDescription = f.ShortDescription
		p.Content = f.Content
		p.BlogID = f.BlogID
		p.BlogName = f.BlogName
	})
}

func (r *PostRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.s.remove(id)
}

func (r *PostRepository) List(_ context.Context, blogID *primitive.ObjectID, q query.ListQuery) ([]models.Post, int64, error) {
	items, total := r.s.page(q, func(p models.Post) bool {
		return blogID == nil || p.BlogID == *blogID
	})
	return items, total, nil
}

func (r *PostRepository) DeleteAll(context.Context) error {
	r.s.clear()
	return nil
}

type CommentRepository struct {
	s *store[models.Comment]
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{s: newStore(
		func(c models.Comment) primitive.ObjectID { return c.ID },
		func(c models.Comment, field string) any {
			if field == "content" {
				return c.Content
			}
			return c.CreatedAt
		},
	)}
}

func (r *CommentRepository) Insert(_ context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.s.put(*c)
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Comment, error) {
	c, err := r.s.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) UpdateContent(_ context.Context, id primitive.ObjectID, content string) error {
	return r.s.update(id, func(c *models.Comment) { c.Content = content })
}

func (r *CommentRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.s.remove(id)
}

func (r *CommentRepository) ListByPost(_ context.Context, postID primitive.ObjectID, q query.ListQuery) ([]models.Comment, int64, error) {
	items, total := r.s.page(q, func(c models.Comment) bool { return c.PostID == postID })
	return items, total, nil
}

func (r *CommentRepository) DeleteAll(context.Context) error {
	r.s.clear()
	return nil
}

// UserRepository 는 login/email 유니크 인덱스를 흉내 낸다. email 위반을 먼저 보고한다.
type UserRepository struct {
	s *store[models.User]
	// 중복 검사와 삽입을 하나의 임계 구역으로 묶는다.
	insertMu sync.Mutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		s: newStore(
			func(u models.User) primitive.ObjectID { return u.ID },
			func(u models.User, field string) any {
				switch field {
				case "login":
					return u.Login
				case "email":
					return u.Email
				}
				return u.CreatedAt
			},
		),
	}
}

func (r *UserRepository) Insert(_ context.Context, u *models.User) error {
	r.insertMu.Lock()
	defer r.insertMu.Unlock()

	email := strings.ToLower(u.Email)
	if _, ok := r.s.find(func(x models.User) bool { return x.Email == email }); ok {
		return repositories.ErrDuplicateEmail
	}
	if _, ok := r.s.find(func(x models.User) bool { return x.Login == u.Login }); ok {
		return repositories.ErrDuplicateLogin
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.s.put(*u)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, err := r.s.get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByLoginOrEmail(_ context.Context, loginOrEmail string) (*models.User, error) {
	email := strings.ToLower(loginOrEmail)
	u, ok := r.s.find(func(x models.User) bool { return x.Login == loginOrEmail || x.Email == email })
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	email = strings.ToLower(email)
	_, ok := r.s.find(func(x models.User) bool { return x.Email == email })
	return ok, nil
}

func (r *UserRepository) ExistsByLogin(_ context.Context, login string) (bool, error) {
	_, ok := r.s.find(func(x models.User) bool { return x.Login == login })
	return ok, nil
}

func (r *UserRepository) FindByConfirmationCode(_ context.Context, code string) (*models.User, error) {
	u, ok := r.s.find(func(x models.User) bool { return x.EmailConfirmation.ConfirmationCode == code })
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) MarkConfirmed(_ context.Context, id primitive.ObjectID) error {
	return r.s.update(id, func(u *models.User) { u.EmailConfirmation.IsConfirmed = true })
}

func (r *UserRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	return r.s.remove(id)
}

func (r *UserRepository) List(_ context.Context, q query.ListQuery) ([]models.User, int64, error) {
	items, total := r.s.page(q, func(u models.User) bool {
		return matchesAny(q.Search, func(field string) string {
			if field == "email" {
				return u.Email
			}
			return u.Login
		})
	})
	return items, total, nil
}

func (r *UserRepository) DeleteAll(context.Context) error {
	r.s.clear()
	return nil
}
