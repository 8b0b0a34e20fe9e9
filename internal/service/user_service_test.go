package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/service"
	"billbook/mocks"
)

func TestUserService_Create_DefaultsToMember(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	companyID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Create(context.Background(), companyID, service.CreateUserInput{
		Email:    "clerk@test.com",
		Password: "securepassword123",
		FullName: "Counter Clerk",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.Equal(t, companyID, user.CompanyID)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "clerk@test.com",
		Password: "securepassword123",
		FullName: "Counter Clerk",
		Role:     "owner",
	})

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicateEmail)

	user, err := svc.Create(context.Background(), uuid.New(), service.CreateUserInput{
		Email:    "existing@test.com",
		Password: "password123",
		FullName: "Test User",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}
