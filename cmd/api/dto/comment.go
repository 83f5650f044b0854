package dto

import (
	"strings"

	"blog-platform/models"
)

type CommentatorInfoDTO struct {
	UserID    string `json:"userId"`
	UserLogin string `json:"userLogin"`
}

type CommentDTO struct {
	ID              string             `json:"id"`
	Content         string             `json:"content"`
	CommentatorInfo CommentatorInfoDTO `json:"commentatorInfo"`
	CreatedAt       string             `json:"createdAt"`
}

func NewCommentDTO(c models.Comment) CommentDTO {
	return CommentDTO{
		ID:      c.ID.Hex(),
		Content: c.Content,
		CommentatorInfo: CommentatorInfoDTO{
			UserID:    c.CommentatorInfo.UserID.Hex(),
			UserLogin: c.CommentatorInfo.UserLogin,
		},
		CreatedAt: FormatTime(c.CreatedAt),
	}
}

// CommentInput 은 댓글 작성/수정 요청 본문이다.
type CommentInput struct {
	Content string `json:"content" validate:"required,min=20,max=300" msg:"content must be between 20 and 300 characters"`
}

func (in *CommentInput) Normalize() {
	in.Content = strings.TrimSpace(in.Content)
}
