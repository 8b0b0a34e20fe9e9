package handler

import (
	"github.com/gin-gonic/gin"

	"billbook/internal/service"
)

// ItemHandler handles item master endpoints.
type ItemHandler struct {
	itemService service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create handles POST /api/v1/items
// @Summary Create an item
// @Tags items
// @Accept json
// @Produce json
// @Param body body service.ItemInput true "Item details"
// @Success 201 {object} Response{data=domain.Item} "Created"
// @Failure 409 {object} ErrorResponseBody "Duplicate item code"
// @Failure 422 {object} ErrorResponseBody "Validation failed"
// @Security BearerAuth
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	var input service.ItemInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), s.CompanyID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, item)
}

// List handles GET /api/v1/items
// @Summary List items
// @Tags items
// @Produce json
// @Param q query string false "Name, code or HSN search"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Item,meta=PagMeta} "Items"
// @Security BearerAuth
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	items, total, err := h.itemService.List(c.Request.Context(), s.CompanyID, c.Query("q"), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, items, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/items/:id
// @Summary Get an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} Response{data=domain.Item} "Item"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), s.CompanyID, id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Update handles PUT /api/v1/items/:id
// @Summary Update an item
// @Description Stock is not changed here; it moves with documents
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param body body service.ItemInput true "Item details"
// @Success 200 {object} Response{data=domain.Item} "Updated"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "item")
	if !ok {
		return
	}
	var input service.ItemInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), s.CompanyID, id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, item)
}

// Delete handles DELETE /api/v1/items/:id
// @Summary Delete an item
// @Tags items
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Deleted"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security BearerAuth
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "item")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), s.CompanyID, id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "item deleted"})
}
