package certificate

import "context"

// CertificateRepository defines the interface for certificate data access
type CertificateRepository interface {
	Create(ctx context.Context, c Certificate) (*Certificate, error)
	GetByID(ctx context.Context, id string) (*Certificate, error)
	List(ctx context.Context, filter ListFilter) ([]Certificate, error)
	Delete(ctx context.Context, id string) error
}
