package dto

import "kushfilms/internal/microservices/http-api/models"

// UpdateUserRequest: admin payload for PUT /api/admin/users/:id
type UpdateUserRequest struct {
	Role     *string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	IsActive *bool   `json:"isActive"`
}

func (r UpdateUserRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Role != nil {
		fields["role"] = *r.Role
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

func FromModelsToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, FromModelToUserResponse(&users[i]))
	}
	return out
}
