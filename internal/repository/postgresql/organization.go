package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peopleops-dev/hr-backend-go/internal/domain/organization"
	"github.com/peopleops-dev/hr-backend-go/internal/pkg/database"
)

type organizationRepository struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, address, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Email, &o.Address, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return o, nil
}

func (r *organizationRepository) Create(ctx context.Context, newOrganization organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (name, email, address)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, address, created_at, updated_at
	`

	var o organization.Organization
	err := q.QueryRow(ctx, query,
		newOrganization.Name, newOrganization.Email, newOrganization.Address,
	).Scan(
		&o.ID, &o.Name, &o.Email, &o.Address, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "uk_organizations_name") {
			return organization.Organization{}, organization.ErrNameExists
		}
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return o, nil
}
