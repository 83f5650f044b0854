package dto

import (
	"strings"

	"blog-platform/models"
)

type BlogDTO struct {
	ID           string `json:"id" example:"64b7f0c2a1b2c3d4e5f60718"`
	Name         string `json:"name" example:"Go notes"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl" example:"https://go.dev"`
	CreatedAt    string `json:"createdAt" example:"2024-01-01T00:00:00.000Z"`
	IsMembership bool   `json:"isMembership"`
}

func NewBlogDTO(b models.Blog) BlogDTO {
	return BlogDTO{
		ID:           b.ID.Hex(),
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    FormatTime(b.CreatedAt),
		IsMembership: b.IsMembership,
	}
}

// BlogInput 은 POST/PUT /blogs 요청 본문이다.
type BlogInput struct {
	Name        string `json:"name" validate:"required,max=15" msg:"name must be between 1 and 15 characters"`
	Description string `json:"description" validate:"required,max=500" msg:"description must be between 1 and 500 characters"`
	WebsiteURL  string `json:"websiteUrl" validate:"required,max=100,https_url" msg:"websiteUrl must be a valid https URL up to 100 characters"`
}

func (in *BlogInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
}

func (in BlogInput) Fields() models.BlogFields {
	return models.BlogFields{
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
	}
}
