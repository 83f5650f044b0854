package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/services"
	"blog-platform/query"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Tags         posts
// @Param        sortBy         query  string  false  "createdAt | title | shortDescription | content | blogId | blogName"
// @Param        sortDirection  query  string  false  "asc | desc"
// @Param        pageNumber     query  int     false  "Page number (1-based)"
// @Param        pageSize       query  int     false  "Page size (1-100)"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := bindQuery(c, query.Posts)
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

// GetPostHandler godoc
// @Summary      Get post by id
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404
// @Router       /posts/{id} [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Tags         posts
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostInput  true  "Post"
// @Success      201  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Failure      404
// @Router       /posts [post]
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.PostInput
		if !bindJSON(c, &in) {
			return
		}
		post, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// UpdatePostHandler godoc
// @Summary      Update post
// @Tags         posts
// @Security     BasicAuth
// @Accept       json
// @Param        id    path  string         true  "ObjectID"
// @Param        body  body  dto.PostInput  true  "Post"
// @Success      204
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Failure      404
// @Router       /posts/{id} [put]
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.PostInput
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

// DeletePostHandler godoc
// @Summary      Delete post
// @Tags         posts
// @Security     BasicAuth
// @Param        id  path  string  true  "ObjectID"
// @Success      204
// @Failure      401
// @Failure      404
// @Router       /posts/{id} [delete]
func DeletePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
