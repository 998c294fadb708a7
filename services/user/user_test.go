package userservice

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tdat0411/laptopshop-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func TestCreateHashesPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "an@example.com",
		Password: "hoidanit",
		FullName: "Nguyen Van A",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "hoidanit", user.Password)
	assert.True(t, svc.CheckPassword(user, "hoidanit"))
	assert.False(t, svc.CheckPassword(user, "wrong"))
	assert.Equal(t, "USER", user.Role)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Email: "an@example.com", Password: "a"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserInput{Email: "an@example.com", Password: "b"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateIsPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{
		Email:    "an@example.com",
		Password: "a",
		FullName: "Nguyen Van A",
		Address:  "Ha Noi",
		Phone:    "0901234567",
	})
	require.NoError(t, err)

	newPhone := "0999999999"
	_, err = svc.Update(ctx, user.ID, UpdateUserInput{Phone: &newPhone})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "0999999999", got.Phone)
	// Untouched fields survive
	assert.Equal(t, "Nguyen Van A", got.FullName)
	assert.Equal(t, "Ha Noi", got.Address)
	// Email is not editable through this path
	assert.Equal(t, "an@example.com", got.Email)
}

func TestUpdateMissingUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	name := "Ghost"
	_, err := svc.Update(context.Background(), 404, UpdateUserInput{FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByEmailMiss(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
