package handler

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// UserHandler handles company staff endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/v1/users
// @Summary Add a user
// @Tags users
// @Accept json
// @Produce json
// @Param body body service.CreateUserInput true "User details"
// @Success 201 {object} Response{data=domain.User} "Created"
// @Failure 403 {object} ErrorResponseBody "Admin only"
// @Failure 409 {object} ErrorResponseBody "Email already exists"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var input service.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.userService.Create(c.Request.Context(), s.CompanyID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, user)
}

// List handles GET /api/v1/users
// @Summary List users
// @Tags users
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.User,meta=PagMeta} "Users"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	users, total, err := h.userService.List(c.Request.Context(), s.CompanyID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, users, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Response{data=domain.User} "User"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, user)
}
