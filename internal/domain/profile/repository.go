package profile

import "context"

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	Create(ctx context.Context, p Profile) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)

	// GetByEmail matches the email case-insensitively.
	GetByEmail(ctx context.Context, email string) (*Profile, error)

	List(ctx context.Context, filter ListFilter) ([]Profile, int64, error)
	Update(ctx context.Context, p Profile) (*Profile, error)
	SetStatus(ctx context.Context, id string, status Status) error
	SoftDelete(ctx context.Context, id string) error
}
