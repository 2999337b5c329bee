package services

import (
	"context"
	"testing"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/core/domain"
	"staffhub/internal/pkg/password"
	"staffhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (*UserService, *testutil.FakeUserRepo) {
	users := testutil.NewFakeUserRepo()
	depts := testutil.NewFakeDeptRepo(&models.Department{ID: 1, Name: "General", Status: models.StatusActive})
	return NewUserService(users, depts), users
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, users := newUserService()

	created, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username:      "jdoe",
		Email:         "jdoe@example.com",
		ContactNumber: "0812345678",
		Password:      "s3cret-pass",
		DepartmentID:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, created.Role)
	assert.Equal(t, models.StatusActive, created.Status)

	stored, err := users.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, password.Verify("s3cret-pass", stored.Password))
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	svc, _ := newUserService()

	input := &CreateUserInput{
		Username:      "jdoe",
		Email:         "jdoe@example.com",
		ContactNumber: "0812345678",
		Password:      "s3cret-pass",
		DepartmentID:  1,
	}
	_, err := svc.CreateUser(context.Background(), input)
	require.NoError(t, err)

	dup := *input
	dup.Email = "other@example.com"
	dup.ContactNumber = "0899999999"
	_, err = svc.CreateUser(context.Background(), &dup)
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestCreateUserRejectsWeakPassword(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username:      "jdoe",
		Email:         "jdoe@example.com",
		ContactNumber: "0812345678",
		Password:      "short",
		DepartmentID:  1,
	})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestCreateUserRejectsUnknownDepartment(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username:      "jdoe",
		Email:         "jdoe@example.com",
		ContactNumber: "0812345678",
		Password:      "s3cret-pass",
		DepartmentID:  99,
	})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestUpdateUserStatus(t *testing.T) {
	svc, _ := newUserService()

	created, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username:      "jdoe",
		Email:         "jdoe@example.com",
		ContactNumber: "0812345678",
		Password:      "s3cret-pass",
		DepartmentID:  1,
	})
	require.NoError(t, err)

	inactive := models.StatusInactive
	updated, err := svc.UpdateUser(context.Background(), created.ID, &UpdateUserInput{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, models.StatusInactive, updated.Status)
}

func TestDeleteMissingUser(t *testing.T) {
	svc, _ := newUserService()
	err := svc.DeleteUser(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsersPagination(t *testing.T) {
	svc, _ := newUserService()

	for _, u := range []struct{ username, email, contact string }{
		{"alice", "alice@example.com", "0810000001"},
		{"bob", "bob@example.com", "0810000002"},
		{"carol", "carol@example.com", "0810000003"},
	} {
		_, err := svc.CreateUser(context.Background(), &CreateUserInput{
			Username:      u.username,
			Email:         u.email,
			ContactNumber: u.contact,
			Password:      "s3cret-pass",
			DepartmentID:  1,
		})
		require.NoError(t, err)
	}

	page, total, err := svc.ListUsers(context.Background(), 0, 2, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 2)

	filtered, total, err := svc.ListUsers(context.Background(), 0, 10, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "alice", filtered[0].Username)
}
