package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/middleware"
	"blog-platform/cmd/api/services"
)

// LoginHandler godoc
// @Summary      Log in
// @Description  Exchange login or email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginInput  true  "Credentials"
// @Success      200  {object}  dto.LoginResponseDTO
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Failure      401
// @Router       /auth/login [post]
func LoginHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.LoginInput
		if !bindJSON(c, &in) {
			return
		}
		res, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// MeHandler godoc
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.MeDTO
// @Failure      401
// @Failure      404
// @Router       /auth/me [get]
func MeHandler(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		me, err := svc.Me(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, me)
	}
}

// RegistrationHandler godoc
// @Summary      Register
// @Description  Create an unconfirmed account; a confirmation code is published for delivery by email
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.UserInput  true  "User"
// @Success      204
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Router       /auth/registration [post]
func RegistrationHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.UserInput
		if !bindJSON(c, &in) {
			return
		}
		if err := svc.Register(c.Request.Context(), in); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// RegistrationConfirmationHandler godoc
// @Summary      Confirm registration
// @Tags         auth
// @Accept       json
// @Param        body  body  dto.RegistrationConfirmationInput  true  "Code"
// @Success      204
// @Failure      400  {object}  dto.ValidationErrorDTO
// @Router       /auth/registration-confirmation [post]
func RegistrationConfirmationHandler(svc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.RegistrationConfirmationInput
		if !bindJSON(c, &in) {
			return
		}
		if err := svc.ConfirmEmail(c.Request.Context(), in.Code); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
