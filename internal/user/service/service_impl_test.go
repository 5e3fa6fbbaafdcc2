package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/subhub/internal/clock"
	"github.com/smallbiznis/subhub/internal/shared"
	userdomain "github.com/smallbiznis/subhub/internal/user/domain"
	userrepo "github.com/smallbiznis/subhub/internal/user/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) userdomain.Service {
	t.Helper()

	dsn := fmt.Sprintf("file:subhub_users_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userdomain.Record{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Clock: clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Repo:  userrepo.Provide(),
	})
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), userdomain.CreateUserRequest{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userdomain.CreateUserRequest{
		Email: "ADA@example.com",
		Name:  "Ada L.",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, userdomain.ErrEmailTaken))
}

func TestCreateRejectsMalformedInput(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), userdomain.CreateUserRequest{
		Email: "not-an-email",
		Name:  "Ada Lovelace",
	})
	assert.True(t, errors.Is(err, shared.ErrValidation))

	_, err = svc.Create(context.Background(), userdomain.CreateUserRequest{
		Email: "ada@example.com",
		Name:  "A",
	})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestUpdateProfileAndChangeRole(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(context.Background(), userdomain.CreateUserRequest{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})
	require.NoError(t, err)

	email := "countess@example.com"
	updated, err := svc.UpdateProfile(context.Background(), userdomain.UpdateUserProfileRequest{
		UserID: created.ID,
		Email:  &email,
	})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)

	promoted, err := svc.ChangeRole(context.Background(), userdomain.ChangeUserRoleRequest{
		UserID: created.ID,
		Role:   "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", promoted.Role)

	_, err = svc.ChangeRole(context.Background(), userdomain.ChangeUserRoleRequest{
		UserID: created.ID,
		Role:   "superuser",
	})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestToggleStatusAndGet(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(context.Background(), userdomain.CreateUserRequest{
		Email: "ada@example.com",
		Name:  "Ada Lovelace",
	})
	require.NoError(t, err)

	disabled, err := svc.ToggleStatus(context.Background(), userdomain.ToggleUserStatusRequest{
		UserID: created.ID,
		Active: false,
	})
	require.NoError(t, err)
	assert.False(t, disabled.IsActive)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = svc.GetByID(context.Background(), "999")
	assert.True(t, errors.Is(err, userdomain.ErrNotFound))
}
