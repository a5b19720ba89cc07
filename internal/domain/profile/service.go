package profile

import "context"

// ProfileService defines the interface for profile operations
type ProfileService interface {
	Create(ctx context.Context, req CreateProfileRequest) (*ProfileResponse, error)
	GetByID(ctx context.Context, id string) (*ProfileResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ProfileResponse, int64, error)
	Update(ctx context.Context, id string, req UpdateProfileRequest) (*ProfileResponse, error)
	Deactivate(ctx context.Context, id string) error
	Reactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, actorID, id string) error
}
