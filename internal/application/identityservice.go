package application

import (
	"context"
	"strings"

	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

// IdentityService manages user identities. Callers are expected to pass the
// access gate before invoking CreateUser or ModifyUser; reads are ungated.
type IdentityService struct {
	users driven.IdentityStore
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(users driven.IdentityStore) *IdentityService {
	return &IdentityService{users: users}
}

// CreateUser stores a new user and returns the assigned id.
// Returns driven.ErrEmptyName if name is empty or blank.
func (s *IdentityService) CreateUser(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, driven.ErrEmptyName
	}
	return s.users.Create(ctx, name)
}

// ModifyUser renames an existing user. Renaming to the current value is a
// permitted no-op. Returns driven.ErrUserNotFound if the id does not exist
// and driven.ErrEmptyName if the new name is blank.
func (s *IdentityService) ModifyUser(ctx context.Context, id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return driven.ErrEmptyName
	}
	return s.users.Rename(ctx, id, newName)
}

// GetUserName returns the user's current display name.
func (s *IdentityService) GetUserName(ctx context.Context, id int64) (string, error) {
	u, err := s.users.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return u.Name, nil
}
