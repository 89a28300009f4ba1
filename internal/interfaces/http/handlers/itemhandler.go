package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/application/inventory/dto"
	"github.com/smartlock-inc/smartlock/internal/application/inventory/usecases"
	"github.com/smartlock-inc/smartlock/internal/domain/inventory"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
	"github.com/smartlock-inc/smartlock/internal/shared/optional"
	"github.com/smartlock-inc/smartlock/internal/shared/utils"
)

var _ = dto.ItemDTO{}

type ItemHandler struct {
	items  usecases.ItemManager
	logger logger.Interface
}

func NewItemHandler(items usecases.ItemManager, logger logger.Interface) *ItemHandler {
	return &ItemHandler{
		items:  items,
		logger: logger,
	}
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required" example:"Torque wrench"`
	Reference   string  `json:"reference" binding:"required" example:"TW-200"`
	Description *string `json:"description"`
	CategoryID  uint    `json:"category_id" binding:"required"`
}

// UpdateItemRequest is a partial update; description may be null.
type UpdateItemRequest struct {
	Name        optional.Value[string] `json:"name" swaggertype:"string"`
	Reference   optional.Value[string] `json:"reference" swaggertype:"string"`
	Description optional.Value[string] `json:"description" swaggertype:"string"`
	CategoryID  optional.Value[uint]   `json:"category_id" swaggertype:"integer"`
}

// CreateItem handles POST /items
//
//	@Summary	Create item
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateItemRequest	true	"Item"
//	@Success	201		{object}	utils.APIResponse{data=dto.ItemDTO}
//	@Failure	409		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for create item", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.items.Create(c.Request.Context(), usecases.CreateItemCommand{
		Name:        req.Name,
		Reference:   req.Reference,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Item created successfully")
}

// ListItems handles GET /items
//
//	@Summary	List items
//	@Tags		Items
//	@Produce	json
//	@Param		skip	query		int	false	"Records to skip"	default(0)
//	@Param		limit	query		int	false	"Page size"			default(100)
//	@Success	200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.ItemDTO}}
//	@Router		/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.items.List(c.Request.Context(), usecases.ListQuery{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), page)
}

// GetItem handles GET /items/:id
//
//	@Summary	Get item
//	@Tags		Items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.ItemDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateItem handles PUT /items/:id
//
//	@Summary	Update item
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Item ID"
//	@Param		request	body		UpdateItemRequest	true	"Fields to change"
//	@Success	200		{object}	utils.APIResponse{data=dto.ItemDTO}
//	@Failure	404		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for update item",
			"item_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.items.Update(c.Request.Context(), id, inventory.ItemPatch{
		Name:        req.Name,
		Reference:   req.Reference,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item updated successfully", result)
}

// DeleteItem handles DELETE /items/:id
//
//	@Summary	Delete item
//	@Tags		Items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.ItemDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Failure	409	{object}	utils.APIResponse
//	@Router		/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.items.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item deleted successfully", result)
}
