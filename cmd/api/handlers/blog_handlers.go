package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/services"
	"blog-platform/query"
)

// ListBlogsHandler godoc
// @Summary      List blogs
// @Description  List blogs with search, sorting and pagination
// @Tags         blogs
// @Param        searchNameTerm  query  string  false  "Case-insensitive substring of name"
// @Param        sortBy          query  string  false  "createdAt | name | description | websiteUrl"
// @Param        sortDirection   query  string  false  "asc | desc"
// @Param        pageNumber      query  int     false  "Page number (1-based)"
// @Param        pageSize        query  int     false  "Page size (1-100)"
// @Produce      json
// @Success      200  {object}  dto.PaginationBlogDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := bindQuery(c, query.Blogs)
		if !ok {
			return
		}
		page, err := svc.List(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog by id
// @Tags         blogs
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.BlogDTO
// @Failure      404
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

// CreateBlogHandler godoc
// @Summary      Create blog
// @Tags         blogs
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BlogInput  true  "Blog"
// @Success      201  {object}  dto.BlogDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BlogInput
		if !bindJSON(c, &in) {
			return
		}
		blog, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}

// UpdateBlogHandler godoc
// @Summary      Update blog
// @Tags         blogs
// @Security     BasicAuth
// @Accept       json
// @Param        id    path  string         true  "ObjectID"
// @Param        body  body  dto.BlogInput  true  "Blog"
// @Success      204
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Failure      404
// @Router       /blogs/{id} [put]
func UpdateBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BlogInput
		if !bindJSON(c, &in) {
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), in); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete blog
// @Tags         blogs
// @Security     BasicAuth
// @Param        id  path  string  true  "ObjectID"
// @Success      204
// @Failure      401
// @Failure      404
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ListBlogPostsHandler godoc
// @Summary      List posts of a blog
// @Tags         blogs
// @Param        blogId         path   string  true   "Blog ObjectID"
// @Param        sortBy         query  string  false  "createdAt | title | shortDescription | content | blogName"
// @Param        sortDirection  query  string  false  "asc | desc"
// @Param        pageNumber     query  int     false  "Page number (1-based)"
// @Param        pageSize       query  int     false  "Page size (1-100)"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      404
// @Router       /blogs/{blogId}/posts [get]
func ListBlogPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := bindQuery(c, query.Posts)
		if !ok {
			return
		}
		page, err := svc.ListByBlog(c.Request.Context(), c.Param("id"), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreateBlogPostHandler godoc
// @Summary      Create post in a blog
// @Tags         blogs
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        blogId  path  string             true  "Blog ObjectID"
// @Param        body    body  dto.BlogPostInput  true  "Post"
// @Success      201  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Failure      404
// @Router       /blogs/{blogId}/posts [post]
func CreateBlogPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.BlogPostInput
		if !bindJSON(c, &in) {
			return
		}
		post, err := svc.CreateForBlog(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}
