package dto

import (
	"strings"

	"blog-platform/models"
)

type PostDTO struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId"`
	BlogName         string `json:"blogName"`
	CreatedAt        string `json:"createdAt"`
}

func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:               p.ID.Hex(),
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		BlogID:           p.BlogID.Hex(),
		BlogName:         p.BlogName,
		CreatedAt:        FormatTime(p.CreatedAt),
	}
}

// BlogPostInput 은 POST /blogs/{blogId}/posts 요청 본문이다. blogId 는 경로에서 온다.
type BlogPostInput struct {
	Title            string `json:"title" validate:"required,max=30" msg:"title must be between 1 and 30 characters"`
	ShortDescription string `json:"shortDescription" validate:"required,max=100" msg:"shortDescription must be between 1 and 100 characters"`
	Content          string `json:"content" validate:"required,max=1000" msg:"content must be between 1 and 1000 characters"`
}

func (in *BlogPostInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	in.Content = strings.TrimSpace(in.Content)
}

// PostInput 은 POST/PUT /posts 요청 본문이다.
type PostInput struct {
	BlogPostInput
	BlogID string `json:"blogId" validate:"required" msg:"blogId is required"`
}

func (in *PostInput) Normalize() {
	in.BlogPostInput.Normalize()
	in.BlogID = strings.TrimSpace(in.BlogID)
}
