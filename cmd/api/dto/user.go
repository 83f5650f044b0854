package dto

import (
	"strings"

	"blog-platform/models"
)

type UserDTO struct {
	ID        string `json:"id"`
	Login     string `json:"login" example:"bob"`
	Email     string `json:"email" example:"b@x.com"`
	CreatedAt string `json:"createdAt"`
}

func NewUserDTO(u models.User) UserDTO {
	return UserDTO{
		ID:        u.ID.Hex(),
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}

// UserInput 은 POST /users 와 POST /auth/registration 요청 본문이다.
// 비밀번호는 공백을 포함해 그대로 해시하므로 다듬지 않는다.
type UserInput struct {
	Login    string `json:"login" validate:"required,min=3,max=10,login" msg:"login must be 3-10 characters of letters, digits, _ or -"`
	Password string `json:"password" validate:"required,min=6,max=20" msg:"password must be between 6 and 20 characters"`
	Email    string `json:"email" validate:"required,email" msg:"email must be a valid email address"`
}

func (in *UserInput) Normalize() {
	in.Login = strings.TrimSpace(in.Login)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}
