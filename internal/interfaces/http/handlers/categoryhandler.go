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

var _ = dto.CategoryDTO{}

type CategoryHandler struct {
	categories usecases.CategoryManager
	logger     logger.Interface
}

func NewCategoryHandler(categories usecases.CategoryManager, logger logger.Interface) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Tools"`
}

type UpdateCategoryRequest struct {
	Name optional.Value[string] `json:"name" swaggertype:"string"`
}

// CreateCategory handles POST /categories
//
//	@Summary	Create category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateCategoryRequest	true	"Category"
//	@Success	201		{object}	utils.APIResponse{data=dto.CategoryDTO}
//	@Failure	409		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categories.Create(c.Request.Context(), usecases.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// ListCategories handles GET /categories
//
//	@Summary	List categories
//	@Tags		Categories
//	@Produce	json
//	@Param		skip	query		int	false	"Records to skip"	default(0)
//	@Param		limit	query		int	false	"Page size"			default(100)
//	@Success	200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.CategoryDTO}}
//	@Router		/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categories.List(c.Request.Context(), usecases.ListQuery{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), page)
}

// GetCategory handles GET /categories/:id
//
//	@Summary	Get category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.CategoryDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateCategory handles PUT /categories/:id
//
//	@Summary	Update category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Category ID"
//	@Param		request	body		UpdateCategoryRequest	true	"Fields to change"
//	@Success	200		{object}	utils.APIResponse{data=dto.CategoryDTO}
//	@Failure	404		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for update category",
			"category_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categories.Update(c.Request.Context(), id, inventory.CategoryPatch{Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}

// DeleteCategory handles DELETE /categories/:id
//
//	@Summary	Delete category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.CategoryDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Failure	409	{object}	utils.APIResponse
//	@Router		/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "category")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.categories.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", result)
}
