package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmajava/timeclock/internal/domain/model"
	"github.com/pharmajava/timeclock/internal/domain/port/driven"
)

type mockIdentityStore struct {
	created []string
	renamed map[int64]string
	names   map[int64]string
	nextID  int64
}

func newMockIdentityStore() *mockIdentityStore {
	return &mockIdentityStore{renamed: map[int64]string{}, names: map[int64]string{}, nextID: 1}
}

func (m *mockIdentityStore) Create(_ context.Context, name string) (int64, error) {
	m.created = append(m.created, name)
	id := m.nextID
	m.nextID++
	m.names[id] = name
	return id, nil
}

func (m *mockIdentityStore) Rename(_ context.Context, id int64, name string) error {
	if _, ok := m.names[id]; !ok {
		return driven.ErrUserNotFound
	}
	m.renamed[id] = name
	m.names[id] = name
	return nil
}

func (m *mockIdentityStore) Get(_ context.Context, id int64) (*model.User, error) {
	name, ok := m.names[id]
	if !ok {
		return nil, driven.ErrUserNotFound
	}
	return &model.User{ID: id, Name: name}, nil
}

func TestIdentityService_CreateUser(t *testing.T) {
	store := newMockIdentityStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	name, err := svc.GetUserName(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", name)
}

func TestIdentityService_CreateUserBlankName(t *testing.T) {
	store := newMockIdentityStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateUser(ctx, name)
		assert.ErrorIs(t, err, driven.ErrEmptyName)
	}
	assert.Empty(t, store.created, "store must not be touched on validation failure")
}

func TestIdentityService_CreateUserTrimsName(t *testing.T) {
	store := newMockIdentityStore()
	svc := NewIdentityService(store)

	_, err := svc.CreateUser(context.Background(), "  Ana  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana"}, store.created)
}

func TestIdentityService_ModifyUserRoundTrip(t *testing.T) {
	store := newMockIdentityStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	require.NoError(t, svc.ModifyUser(ctx, id, "Ana María"))

	name, err := svc.GetUserName(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", name)
}

func TestIdentityService_ModifyUserNoOpRenameAllowed(t *testing.T) {
	store := newMockIdentityStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	assert.NoError(t, svc.ModifyUser(ctx, id, "Ana"))
}

func TestIdentityService_ModifyUserMissing(t *testing.T) {
	svc := NewIdentityService(newMockIdentityStore())

	err := svc.ModifyUser(context.Background(), 42, "Nadie")
	assert.ErrorIs(t, err, driven.ErrUserNotFound)
}

func TestIdentityService_ModifyUserBlankName(t *testing.T) {
	store := newMockIdentityStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, "Ana")
	require.NoError(t, err)

	err = svc.ModifyUser(ctx, id, "  ")
	assert.ErrorIs(t, err, driven.ErrEmptyName)
	assert.Empty(t, store.renamed)
}
