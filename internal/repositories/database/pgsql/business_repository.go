package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
	portsrepo "github.com/Murlidhar08/settlr-sub001/internal/core/ports/repositories"
	"github.com/Murlidhar08/settlr-sub001/internal/models"
	"github.com/Murlidhar08/settlr-sub001/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for business data.
func newPgxBusinessRepository(pool *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

const businessSelectQuery = `
SELECT
	b.business_id, b.name, b.owner_user_id,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM businesses b
`

func (r *PgxBusinessRepository) getBusinesses(ctx context.Context, filterQuery string, args ...any) ([]domain.Business, error) {
	rows, err := r.db(ctx).Query(ctx, businessSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query businesses", err)
	}
	defer rows.Close()

	modelBusinesses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Business])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect business rows", err)
	}
	return mapping.ToDomainBusinessSlice(modelBusinesses), nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	businesses, err := r.getBusinesses(ctx, "WHERE b.business_id = $1", businessID)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &businesses[0], nil
}

func (r *PgxBusinessRepository) ListBusinessesByOwner(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
	return r.getBusinesses(ctx, "WHERE b.owner_user_id = $1 ORDER BY b.created_at ASC, b.business_id ASC", ownerUserID)
}

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	m := mapping.ToModelBusiness(business)
	query := `
		INSERT INTO businesses (business_id, name, owner_user_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.BusinessID, m.Name, m.OwnerUserID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: business with ID %s already exists", apperrors.ErrDuplicate, m.BusinessID)
		}
		return fmt.Errorf("failed to save business %s: %w", m.BusinessID, err)
	}
	return nil
}

func (r *PgxBusinessRepository) UpdateBusiness(ctx context.Context, business domain.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE business_id = $1;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		business.BusinessID, business.Name, business.LastUpdatedAt, business.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", business.BusinessID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
