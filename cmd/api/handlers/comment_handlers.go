package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/middleware"
	"blog-platform/cmd/api/services"
	"blog-platform/query"
)

// ListPostCommentsHandler godoc
// @Summary      List comments of a post
// @Tags         comments
// @Param        postId         path   string  true   "Post ObjectID"
// @Param        sortBy         query  string  false  "createdAt"
// @Param        sortDirection  query  string  false  "asc | desc"
// @Param        pageNumber     query  int     false  "Page number (1-based)"
// @Param        pageSize       query  int     false  "Page size (clamped to 20)"
// @Produce      json
// @Success      200  {object}  dto.PaginationCommentDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      404
// @Router       /posts/{postId}/comments [get]
func ListPostCommentsHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := bindQuery(c, query.Comments)
		if !ok {
			return
		}
		page, err := svc.ListByPost(c.Request.Context(), c.Param("id"), q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// CreatePostCommentHandler godoc
// @Summary      Comment on a post
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        postId  path  string            true  "Post ObjectID"
// @Param        body    body  dto.CommentInput  true  "Comment"
// @Success      201  {object}  dto.CommentDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Failure      404
// @Router       /posts/{postId}/comments [post]
func CreatePostCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CommentInput
		if !bindJSON(c, &in) {
			return
		}
		comment, err := svc.Create(c.Request.Context(), c.Param("id"), middleware.UserID(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, comment)
	}
}

// GetCommentHandler godoc
// @Summary      Get comment by id
// @Tags         comments
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.CommentDTO
// @Failure      404
// @Router       /comments/{id} [get]
func GetCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		comment, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, comment)
	}
}

// UpdateCommentHandler godoc
// @Summary      Edit own comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  string            true  "ObjectID"
// @Param        body  body  dto.CommentInput  true  "Comment"
// @Success      204
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /comments/{id} [put]
func UpdateCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CommentInput
		if !bindJSON(c, &in) {
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), middleware.UserID(c), in); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete own comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "ObjectID"
// @Success      204
// @Failure      401
// @Failure      403
// @Failure      404
// @Router       /comments/{id} [delete]
func DeleteCommentHandler(svc *services.CommentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
