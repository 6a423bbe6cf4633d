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

type PgxPartyRepository struct {
	BaseRepository
}

func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partySelectQuery = `
SELECT
	p.party_id, p.business_id, p.name, p.contact_number, p.party_type, p.profile_url,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM parties p
`

func (r *PgxPartyRepository) getParties(ctx context.Context, filterQuery string, args ...any) ([]domain.Party, error) {
	rows, err := r.db(ctx).Query(ctx, partySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query parties", err)
	}
	defer rows.Close()

	modelParties, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Party])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect party rows", err)
	}
	return mapping.ToDomainPartySlice(modelParties), nil
}

func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, businessID, partyID string) (*domain.Party, error) {
	parties, err := r.getParties(ctx, "WHERE p.business_id = $1 AND p.party_id = $2", businessID, partyID)
	if err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &parties[0], nil
}

func (r *PgxPartyRepository) ListParties(ctx context.Context, businessID string, partyType domain.PartyType) ([]domain.Party, error) {
	if partyType == "" {
		return r.getParties(ctx, "WHERE p.business_id = $1 ORDER BY p.created_at DESC, p.party_id DESC", businessID)
	}
	return r.getParties(ctx,
		"WHERE p.business_id = $1 AND p.party_type = $2 ORDER BY p.created_at DESC, p.party_id DESC",
		businessID, string(partyType))
}

func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	m := mapping.ToModelParty(party)
	query := `
		INSERT INTO parties (
			party_id, business_id, name, contact_number, party_type, profile_url,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PartyID, m.BusinessID, m.Name, m.ContactNumber, m.PartyType, m.ProfileURL,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: party with ID %s already exists", apperrors.ErrDuplicate, m.PartyID)
		}
		return fmt.Errorf("failed to save party %s: %w", m.PartyID, err)
	}
	return nil
}

func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	query := `
		UPDATE parties
		SET name = $3, contact_number = $4, last_updated_at = $5, last_updated_by = $6
		WHERE business_id = $1 AND party_id = $2;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query,
		party.BusinessID, party.PartyID, party.Name, party.ContactNumber, party.LastUpdatedAt, party.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", party.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPartyRepository) DeleteParty(ctx context.Context, businessID, partyID string) error {
	cmdTag, err := r.db(ctx).Exec(ctx, `DELETE FROM parties WHERE business_id = $1 AND party_id = $2;`, businessID, partyID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("party %s is still referenced: %w", partyID, err)
		}
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
