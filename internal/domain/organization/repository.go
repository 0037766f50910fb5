package organization

import "context"

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	Create(ctx context.Context, newOrganization Organization) (Organization, error)
}
