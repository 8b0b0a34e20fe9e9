package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"billbook/internal/domain"
	"billbook/internal/port"
)

// CreateUserInput is the DTO for adding a staff login to a company.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	FullName string          `json:"full_name" binding:"required"`
	Role     domain.UserRole `json:"role"`
}

// UserService defines the company staff contract.
type UserService interface {
	Create(ctx context.Context, companyID uuid.UUID, input CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error)
	List(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.User, int, error)
}

type userService struct {
	repo port.UserRepository
}

// NewUserService creates a new UserService implementation.
func NewUserService(repo port.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, companyID uuid.UUID, input CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleMember
	}
	if role != domain.RoleAdmin && role != domain.RoleMember {
		verr := &domain.ValidationError{}
		verr.Add("role", "must be admin or member")
		return nil, verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		CompanyID:    companyID,
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		Role:         role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Info().Str("user_id", user.ID.String()).Str("role", string(role)).Msg("userService.Create: user added")
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, companyID, userID uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, companyID, userID)
}

func (s *userService) List(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]domain.User, int, error) {
	return s.repo.ListByCompany(ctx, companyID, offset, limit)
}
