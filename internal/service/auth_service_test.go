package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/service"
	"billbook/mocks"
)

func authFixtures() (*domain.Company, *domain.User) {
	company := &domain.Company{
		ID:        uuid.New(),
		Name:      "Sharma Traders",
		Slug:      "sharma-traders",
		HomeState: "Maharashtra",
		IsActive:  true,
	}
	user := &domain.User{
		ID:           uuid.New(),
		CompanyID:    company.ID,
		Email:        "owner@test.com",
		PasswordHash: hashPassword("password123"),
		FullName:     "Owner",
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	return company, user
}

func TestAuthService_Login_Success(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	company, user := authFixtures()
	companyRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(company, nil)
	userRepo.On("GetByEmail", mock.Anything, company.ID, "owner@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: " Sharma-Traders ",
		Email:       "owner@test.com",
		Password:    "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	session := claims.Session()
	assert.Equal(t, company.ID, session.CompanyID)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, domain.RoleAdmin, session.Role)
	assert.Equal(t, "Maharashtra", session.HomeState)

	companyRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	company, user := authFixtures()
	companyRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(company, nil)
	userRepo.On("GetByEmail", mock.Anything, company.ID, "owner@test.com").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: "sharma-traders",
		Email:       "owner@test.com",
		Password:    "wrongpassword",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownCompany(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	companyRepo.On("GetBySlug", mock.Anything, "nobody").Return(nil, domain.ErrNotFound)

	result, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: "nobody",
		Email:       "owner@test.com",
		Password:    "password123",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_InactiveCompany(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	company, _ := authFixtures()
	company.IsActive = false
	companyRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(company, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: "sharma-traders",
		Email:       "owner@test.com",
		Password:    "password123",
	})

	assert.ErrorIs(t, err, domain.ErrCompanyInactive)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	company, user := authFixtures()
	user.IsActive = false
	companyRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(company, nil)
	userRepo.On("GetByEmail", mock.Anything, company.ID, "owner@test.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: "sharma-traders",
		Email:       "owner@test.com",
		Password:    "password123",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_RefreshToken(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	company, user := authFixtures()
	companyRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(company, nil)
	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)
	userRepo.On("GetByEmail", mock.Anything, company.ID, "owner@test.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, company.ID, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: "sharma-traders",
		Email:       "owner@test.com",
		Password:    "password123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_RejectsRefreshToken(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	company, user := authFixtures()
	companyRepo.On("GetBySlug", mock.Anything, "sharma-traders").Return(company, nil)
	userRepo.On("GetByEmail", mock.Anything, company.ID, "owner@test.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		CompanySlug: "sharma-traders",
		Email:       "owner@test.com",
		Password:    "password123",
	})
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
