package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"billbook/internal/domain"
	"billbook/internal/port"
	"billbook/internal/validator"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

// RegisterInput is the DTO for signing up a new company with its first admin.
type RegisterInput struct {
	CompanyName string `json:"company_name" binding:"required"`
	CompanySlug string `json:"company_slug" binding:"required"`
	GSTIN       string `json:"gstin" binding:"omitempty,gstin"`
	HomeState   string `json:"home_state"`
	Address     string `json:"address"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name" binding:"required"`
}

// RegisterOutput contains the results of a successful registration.
type RegisterOutput struct {
	Company *domain.Company `json:"company"`
	User    *domain.User    `json:"user"`
	Tokens  *TokenPair      `json:"tokens"`
}

// RegistrationService defines the company sign-up contract.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
}

type registrationService struct {
	companyRepo port.CompanyRepository
	userRepo    port.UserRepository
	authSvc     AuthService
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	companyRepo port.CompanyRepository,
	userRepo port.UserRepository,
	authSvc AuthService,
) RegistrationService {
	return &registrationService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		authSvc:     authSvc,
	}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	company, err := newCompany(input)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err // ErrDuplicateCompanySlug propagates naturally
	}

	user := &domain.User{
		CompanyID:    company.ID,
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.authSvc.Login(ctx, LoginInput{
		CompanySlug: company.Slug,
		Email:       input.Email,
		Password:    input.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	return &RegisterOutput{Company: company, User: user, Tokens: tokens}, nil
}

// newCompany validates the sign-up form and fills home state and state code
// from the GSTIN when one is given.
func newCompany(input RegisterInput) (*domain.Company, error) {
	verr := &domain.ValidationError{}

	slug := strings.ToLower(strings.TrimSpace(input.CompanySlug))
	if !slugPattern.MatchString(slug) {
		verr.Add("company_slug", "use 2-63 lowercase letters, digits or dashes")
	}

	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))
	homeState := strings.TrimSpace(input.HomeState)
	stateCode := ""
	if gstin != "" {
		if !validator.ValidGSTIN(gstin) {
			verr.Add("gstin", "invalid GSTIN")
		} else {
			stateCode = gstin[:2]
			if homeState == "" {
				homeState = validator.StateFromGSTIN(gstin)
			}
		}
	}
	if homeState == "" {
		verr.Add("home_state", "home state is required when no GSTIN is given")
	} else if stateCode == "" {
		stateCode = validator.CodeForState(homeState)
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return &domain.Company{
		Name:      strings.TrimSpace(input.CompanyName),
		Slug:      slug,
		GSTIN:     gstin,
		HomeState: homeState,
		StateCode: stateCode,
		Address:   input.Address,
		IsActive:  true,
	}, nil
}
