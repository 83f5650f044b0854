package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/services"
	"blog-platform/query"
)

// ListUsersHandler godoc
// @Summary      List users
// @Tags         users
// @Security     BasicAuth
// @Param        searchLoginTerm  query  string  false  "Case-insensitive substring of login"
// @Param        searchEmailTerm  query  string  false  "Case-insensitive substring of email"
// @Param        sortBy           query  string  false  "createdAt | login | email"
// @Param        sortDirection    query  string  false  "asc | desc"
// @Param        pageNumber       query  int     false  "Page number (1-based)"
// @Param        pageSize         query  int     false  "Page size (clamped to 20)"
// @Produce      json
// @Success      200  {object}  dto.PaginationUserDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Router       /users [get]
func ListUsersHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := bindQuery(c, query.Users)
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

// CreateUserHandler godoc
// @Summary      Create user
// @Description  Admin-created users are confirmed immediately
// @Tags         users
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserInput  true  "User"
// @Success      201  {object}  dto.UserDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Router       /users [post]
func CreateUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.UserInput
		if !bindJSON(c, &in) {
			return
		}
		user, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// DeleteUserHandler godoc
// @Summary      Delete user
// @Tags         users
// @Security     BasicAuth
// @Param        id  path  string  true  "ObjectID"
// @Success      204
// @Failure      401
// @Failure      404
// @Router       /users/{id} [delete]
func DeleteUserHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
