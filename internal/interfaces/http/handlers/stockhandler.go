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

var _ = dto.StockDTO{}

type StockHandler struct {
	stock  usecases.StockManager
	logger logger.Interface
}

func NewStockHandler(stock usecases.StockManager, logger logger.Interface) *StockHandler {
	return &StockHandler{
		stock:  stock,
		logger: logger,
	}
}

type CreateStockRequest struct {
	Quantity    *int    `json:"quantity" binding:"required" example:"4"`
	ItemID      uint    `json:"item_id" binding:"required"`
	LockerID    uint    `json:"locker_id" binding:"required"`
	UnitMeasure *string `json:"unit_measure" example:"units"`
}

type UpdateStockRequest struct {
	Quantity    optional.Value[int]    `json:"quantity" swaggertype:"integer"`
	ItemID      optional.Value[uint]   `json:"item_id" swaggertype:"integer"`
	LockerID    optional.Value[uint]   `json:"locker_id" swaggertype:"integer"`
	UnitMeasure optional.Value[string] `json:"unit_measure" swaggertype:"string"`
}

// CreateStock handles POST /stock
//
//	@Summary	Create stock entry
//	@Tags		Stock
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateStockRequest	true	"Stock entry"
//	@Success	201		{object}	utils.APIResponse{data=dto.StockDTO}
//	@Failure	409		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/stock [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req CreateStockRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for create stock", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.stock.Create(c.Request.Context(), usecases.CreateStockCommand{
		Quantity:    *req.Quantity,
		ItemID:      req.ItemID,
		LockerID:    req.LockerID,
		UnitMeasure: req.UnitMeasure,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Stock created successfully")
}

// ListStock handles GET /stock
//
//	@Summary	List stock entries
//	@Tags		Stock
//	@Produce	json
//	@Param		skip	query		int	false	"Records to skip"	default(0)
//	@Param		limit	query		int	false	"Page size"			default(100)
//	@Success	200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.StockDTO}}
//	@Router		/stock [get]
func (h *StockHandler) ListStock(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.stock.List(c.Request.Context(), usecases.ListQuery{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), page)
}

// GetStock handles GET /stock/:id
//
//	@Summary	Get stock entry
//	@Tags		Stock
//	@Produce	json
//	@Param		id	path		int	true	"Stock ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.StockDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/stock/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "stock")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.stock.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStock handles PUT /stock/:id
//
//	@Summary	Update stock entry
//	@Tags		Stock
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Stock ID"
//	@Param		request	body		UpdateStockRequest	true	"Fields to change"
//	@Success	200		{object}	utils.APIResponse{data=dto.StockDTO}
//	@Failure	404		{object}	utils.APIResponse
//	@Failure	409		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/stock/{id} [put]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "stock")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStockRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for update stock",
			"stock_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.stock.Update(c.Request.Context(), id, inventory.StockPatch{
		Quantity:    req.Quantity,
		ItemID:      req.ItemID,
		LockerID:    req.LockerID,
		UnitMeasure: req.UnitMeasure,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock updated successfully", result)
}

// DeleteStock handles DELETE /stock/:id
//
//	@Summary	Delete stock entry
//	@Tags		Stock
//	@Produce	json
//	@Param		id	path		int	true	"Stock ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.StockDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/stock/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "stock")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.stock.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Stock deleted successfully", result)
}
