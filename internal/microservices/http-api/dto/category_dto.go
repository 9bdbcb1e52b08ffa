package dto

import "strings"

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"max=1000"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
	Order       int    `json:"order"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
	Order       *int    `json:"order"`
}

func (r UpdateCategoryRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Slug != nil {
		fields["slug"] = *r.Slug
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	if r.Order != nil {
		fields["sort_order"] = *r.Order
	}
	return fields
}
