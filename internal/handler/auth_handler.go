package handler

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService         service.AuthService
	registrationService service.RegistrationService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, registrationService service.RegistrationService) *AuthHandler {
	return &AuthHandler{authService: authService, registrationService: registrationService}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate with company slug, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} Response{data=TokenResponse} "Token pair"
// @Failure 401 {object} ErrorResponseBody "Invalid credentials"
// @Failure 403 {object} ErrorResponseBody "Company or user inactive"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	tokenPair, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}

// RefreshToken handles POST /api/v1/auth/refresh
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} Response{data=TokenResponse} "New token pair"
// @Failure 401 {object} ErrorResponseBody "Invalid refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input service.RefreshInput
	if !bindJSON(c, &input) {
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}

// Register handles POST /api/v1/auth/register
// @Summary Register a company
// @Description Create a company with its first admin user and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Company and admin details"
// @Success 201 {object} Response{data=service.RegisterOutput} "Registered"
// @Failure 409 {object} ErrorResponseBody "Slug or email already taken"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	output, err := h.registrationService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, output)
}

// Me handles GET /api/v1/auth/me
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=SessionResponse} "Session"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	RespondOK(c, SessionResponse{
		CompanyID: s.CompanyID,
		UserID:    s.UserID,
		Email:     s.Email,
		Role:      s.Role,
		HomeState: s.HomeState,
	})
}
