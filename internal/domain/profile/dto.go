package profile

import "time"

type CreateProfileRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	Role       string  `json:"role"`
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	Status     *string `json:"status"`
}

type ProfileResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department"`
	Role       string  `json:"role"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListFilter struct {
	Department string
	Status     string
	Search     string
	Page       int
	Limit      int
}

func ToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department,
		Role:       string(p.Role),
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
