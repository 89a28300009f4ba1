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

var _ = dto.LockerDTO{}

type LockerHandler struct {
	lockers usecases.LockerManager
	logger  logger.Interface
}

func NewLockerHandler(lockers usecases.LockerManager, logger logger.Interface) *LockerHandler {
	return &LockerHandler{
		lockers: lockers,
		logger:  logger,
	}
}

// CreateLockerRequest creates an active locker unless is_active is false.
type CreateLockerRequest struct {
	LockerType string `json:"locker_type" binding:"required" example:"tool_cabinet"`
	IsActive   *bool  `json:"is_active"`
}

type UpdateLockerRequest struct {
	LockerType optional.Value[string] `json:"locker_type" swaggertype:"string"`
	IsActive   optional.Value[bool]   `json:"is_active" swaggertype:"boolean"`
}

// CreateLocker handles POST /lockers
//
//	@Summary	Create locker
//	@Tags		Lockers
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateLockerRequest	true	"Locker"
//	@Success	201		{object}	utils.APIResponse{data=dto.LockerDTO}
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/lockers [post]
func (h *LockerHandler) CreateLocker(c *gin.Context) {
	var req CreateLockerRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for create locker", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	result, err := h.lockers.Create(c.Request.Context(), usecases.CreateLockerCommand{
		LockerType: req.LockerType,
		IsActive:   isActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Locker created successfully")
}

// ListLockers handles GET /lockers
//
//	@Summary	List lockers
//	@Tags		Lockers
//	@Produce	json
//	@Param		skip	query		int	false	"Records to skip"	default(0)
//	@Param		limit	query		int	false	"Page size"			default(100)
//	@Success	200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.LockerDTO}}
//	@Router		/lockers [get]
func (h *LockerHandler) ListLockers(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.lockers.List(c.Request.Context(), usecases.ListQuery{Skip: page.Skip, Limit: page.Limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), page)
}

// GetLocker handles GET /lockers/:id
//
//	@Summary	Get locker
//	@Tags		Lockers
//	@Produce	json
//	@Param		id	path		int	true	"Locker ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.LockerDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/lockers/{id} [get]
func (h *LockerHandler) GetLocker(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "locker")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.lockers.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateLocker handles PUT /lockers/:id
//
//	@Summary	Update locker
//	@Tags		Lockers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Locker ID"
//	@Param		request	body		UpdateLockerRequest	true	"Fields to change"
//	@Success	200		{object}	utils.APIResponse{data=dto.LockerDTO}
//	@Failure	404		{object}	utils.APIResponse
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/lockers/{id} [put]
func (h *LockerHandler) UpdateLocker(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "locker")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateLockerRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for update locker",
			"locker_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.lockers.Update(c.Request.Context(), id, inventory.LockerPatch{
		LockerType: req.LockerType,
		IsActive:   req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locker updated successfully", result)
}

// DeleteLocker handles DELETE /lockers/:id
//
//	@Summary		Delete locker
//	@Description	Fails with 409 while stock or permissions still reference the locker.
//	@Tags			Lockers
//	@Produce		json
//	@Param			id	path		int	true	"Locker ID"
//	@Success		200	{object}	utils.APIResponse{data=dto.LockerDTO}
//	@Failure		404	{object}	utils.APIResponse
//	@Failure		409	{object}	utils.APIResponse
//	@Router			/lockers/{id} [delete]
func (h *LockerHandler) DeleteLocker(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "locker")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.lockers.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locker deleted successfully", result)
}

// ListLockerStock handles GET /lockers/:id/stock
//
//	@Summary	List stock held in a locker
//	@Tags		Lockers
//	@Produce	json
//	@Param		id	path		int	true	"Locker ID"
//	@Success	200	{object}	utils.APIResponse{data=[]dto.StockDTO}
//	@Router		/lockers/{id}/stock [get]
func (h *LockerHandler) ListLockerStock(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "locker")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.lockers.ListStock(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
