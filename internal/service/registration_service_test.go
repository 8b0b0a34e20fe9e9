package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"billbook/internal/domain"
	"billbook/internal/service"
	"billbook/mocks"
)

func TestRegistrationService_Register_Success(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(companyRepo, userRepo, authSvc)

	tokens := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	companyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	authSvc.On("Login", mock.Anything, service.LoginInput{
		CompanySlug: "sharma-traders",
		Email:       "owner@test.com",
		Password:    "password123",
	}).Return(tokens, nil)

	out, err := svc.Register(context.Background(), service.RegisterInput{
		CompanyName: "Sharma Traders",
		CompanySlug: "Sharma-Traders",
		GSTIN:       "27aapfu0939f1zv",
		Email:       "owner@test.com",
		Password:    "password123",
		FullName:    "Owner",
	})

	require.NoError(t, err)
	assert.Equal(t, "sharma-traders", out.Company.Slug)
	assert.Equal(t, "27AAPFU0939F1ZV", out.Company.GSTIN)
	assert.Equal(t, "Maharashtra", out.Company.HomeState)
	assert.Equal(t, "27", out.Company.StateCode)
	assert.Equal(t, domain.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.User.PasswordHash)
	assert.Equal(t, tokens, out.Tokens)
	authSvc.AssertExpectations(t)
}

func TestRegistrationService_Register_HomeStateWithoutGSTIN(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(companyRepo, userRepo, authSvc)

	companyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	authSvc.On("Login", mock.Anything, mock.Anything).Return(&service.TokenPair{}, nil)

	out, err := svc.Register(context.Background(), service.RegisterInput{
		CompanyName: "Kumar Stores",
		CompanySlug: "kumar",
		HomeState:   "Karnataka",
		Email:       "owner@test.com",
		Password:    "password123",
		FullName:    "Owner",
	})

	require.NoError(t, err)
	assert.Equal(t, "29", out.Company.StateCode)
}

func TestRegistrationService_Register_Invalid(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(companyRepo, userRepo, authSvc)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		CompanyName: "Bad",
		CompanySlug: "bad slug!",
		GSTIN:       "29ABCDE1234F1Z5",
		Email:       "owner@test.com",
		Password:    "password123",
		FullName:    "Owner",
	})

	require.ErrorIs(t, err, domain.ErrValidationFailed)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"company_slug", "gstin", "home_state"}, fields)
	companyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegistrationService_Register_DuplicateSlug(t *testing.T) {
	companyRepo := new(mocks.MockCompanyRepo)
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)
	svc := service.NewRegistrationService(companyRepo, userRepo, authSvc)

	companyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Return(domain.ErrDuplicateCompanySlug)

	out, err := svc.Register(context.Background(), service.RegisterInput{
		CompanyName: "Sharma Traders",
		CompanySlug: "sharma-traders",
		HomeState:   "Maharashtra",
		Email:       "owner@test.com",
		Password:    "password123",
		FullName:    "Owner",
	})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrDuplicateCompanySlug)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
