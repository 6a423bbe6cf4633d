package pgsql

import (
	"context"
	"errors"
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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userSelectQuery = `
SELECT
	u.user_id, u.name, u.email, u.password_hash, u.auth_provider, u.provider_user_id,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM users u
`

// getUser private func to get a single user from the select query filters
func (r *PgxUserRepository) getUser(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	rows, err := r.db(ctx).Query(ctx, userSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query users", err)
	}
	defer rows.Close()

	modelUser, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect user row", err)
	}
	user := mapping.ToDomainUser(modelUser)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, "WHERE u.user_id = $1", userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, "WHERE lower(u.email) = lower($1)", email)
}

func (r *PgxUserRepository) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.getUser(ctx, "WHERE u.auth_provider = $1 AND u.provider_user_id = $2", string(provider), providerUserID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (
			user_id, name, email, password_hash, auth_provider, provider_user_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.UserID, m.Name, m.Email, m.PasswordHash, m.AuthProvider, m.ProviderUserID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", m.UserID, err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET name = $2, auth_provider = $3, provider_user_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE user_id = $1;
	`
	cmdTag, err := r.db(ctx).Exec(ctx, query, m.UserID, m.Name, m.AuthProvider, m.ProviderUserID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: provider identity already linked to another user", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user %s: %w", m.UserID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, active_business_id, currency_code, date_format, updated_at
		FROM user_settings
		WHERE user_id = $1;
	`
	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query user settings", err)
	}
	defer rows.Close()

	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.UserSettings])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect user settings", err)
	}
	settings := mapping.ToDomainUserSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) UpsertSettings(ctx context.Context, settings domain.UserSettings) error {
	m := mapping.ToModelUserSettings(settings)
	query := `
		INSERT INTO user_settings (user_id, active_business_id, currency_code, date_format, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			active_business_id = EXCLUDED.active_business_id,
			currency_code = EXCLUDED.currency_code,
			date_format = EXCLUDED.date_format,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.db(ctx).Exec(ctx, query, m.UserID, m.ActiveBusinessID, m.CurrencyCode, m.DateFormat, m.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save settings of user %s: %w", m.UserID, err)
	}
	return nil
}
