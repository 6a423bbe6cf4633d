package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/Murlidhar08/settlr-sub001/internal/apperrors"
	"github.com/Murlidhar08/settlr-sub001/internal/core/domain"
)

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	defer s.lock(ctx)()
	e, ok := s.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	user := e.value
	return &user, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	defer s.lock(ctx)()
	for _, e := range s.users {
		if strings.EqualFold(e.value.Email, email) {
			user := e.value
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindUserByProvider(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	defer s.lock(ctx)()
	for _, e := range s.users {
		if e.value.AuthProvider == provider && e.value.ProviderUserID == providerUserID {
			user := e.value
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	defer s.lock(ctx)()
	if _, exists := s.users[user.UserID]; exists {
		return fmt.Errorf("%w: user with ID %s already exists", apperrors.ErrDuplicate, user.UserID)
	}
	for _, e := range s.users {
		if strings.EqualFold(e.value.Email, user.Email) {
			return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, user.Email)
		}
	}
	s.users[user.UserID] = entry[domain.User]{value: user, seq: s.nextSeq()}
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	defer s.lock(ctx)()
	e, ok := s.users[user.UserID]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.value.Name = user.Name
	e.value.AuthProvider = user.AuthProvider
	e.value.ProviderUserID = user.ProviderUserID
	e.value.LastUpdatedAt = user.LastUpdatedAt
	e.value.LastUpdatedBy = user.LastUpdatedBy
	s.users[user.UserID] = e
	return nil
}

func (s *Store) FindSettingsByUserID(ctx context.Context, userID string) (*domain.UserSettings, error) {
	defer s.lock(ctx)()
	settings, ok := s.settings[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &settings, nil
}

func (s *Store) UpsertSettings(ctx context.Context, settings domain.UserSettings) error {
	defer s.lock(ctx)()
	s.settings[settings.UserID] = settings
	return nil
}
