package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/application/permission/dto"
	"github.com/smartlock-inc/smartlock/internal/application/permission/usecases"
	"github.com/smartlock-inc/smartlock/internal/domain/permission"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
	"github.com/smartlock-inc/smartlock/internal/shared/optional"
	"github.com/smartlock-inc/smartlock/internal/shared/utils"
)

var _ = dto.PermissionDTO{}

type PermissionHandler struct {
	createUC     usecases.CreatePermissionExecutor
	getUC        usecases.GetPermissionExecutor
	listUC       usecases.ListPermissionsExecutor
	listLockerUC usecases.ListLockerPermissionsExecutor
	getRoleUC    usecases.GetRolePermissionExecutor
	updateUC     usecases.UpdatePermissionExecutor
	deleteUC     usecases.DeletePermissionExecutor
	logger       logger.Interface
}

func NewPermissionHandler(
	createUC usecases.CreatePermissionExecutor,
	getUC usecases.GetPermissionExecutor,
	listUC usecases.ListPermissionsExecutor,
	listLockerUC usecases.ListLockerPermissionsExecutor,
	getRoleUC usecases.GetRolePermissionExecutor,
	updateUC usecases.UpdatePermissionExecutor,
	deleteUC usecases.DeletePermissionExecutor,
	logger logger.Interface,
) *PermissionHandler {
	return &PermissionHandler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		listLockerUC: listLockerUC,
		getRoleUC:    getRoleUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		logger:       logger,
	}
}

// CreatePermissionRequest grants a role access to a locker. Omitted flags
// default to view-only access.
type CreatePermissionRequest struct {
	RoleName   string  `json:"role_name" binding:"required,max=100"`
	LockerID   uint    `json:"locker_id" binding:"required"`
	CanView    *bool   `json:"can_view"`
	CanOpen    *bool   `json:"can_open"`
	CanEdit    *bool   `json:"can_edit"`
	CanTake    *bool   `json:"can_take"`
	CanManage  *bool   `json:"can_manage"`
	ValidUntil *string `json:"valid_until" example:"2030-12-31"`
}

func (r CreatePermissionRequest) access() permission.Access {
	a := permission.DefaultAccess()
	setFlag(&a.CanView, r.CanView)
	setFlag(&a.CanOpen, r.CanOpen)
	setFlag(&a.CanEdit, r.CanEdit)
	setFlag(&a.CanTake, r.CanTake)
	setFlag(&a.CanManage, r.CanManage)
	return a
}

func setFlag(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// UpdatePermissionRequest is a partial update. Only valid_until may be null,
// which removes the expiry.
type UpdatePermissionRequest struct {
	RoleName   optional.Value[string] `json:"role_name" swaggertype:"string"`
	LockerID   optional.Value[uint]   `json:"locker_id" swaggertype:"integer"`
	CanView    optional.Value[bool]   `json:"can_view" swaggertype:"boolean"`
	CanOpen    optional.Value[bool]   `json:"can_open" swaggertype:"boolean"`
	CanEdit    optional.Value[bool]   `json:"can_edit" swaggertype:"boolean"`
	CanTake    optional.Value[bool]   `json:"can_take" swaggertype:"boolean"`
	CanManage  optional.Value[bool]   `json:"can_manage" swaggertype:"boolean"`
	ValidUntil optional.Value[string] `json:"valid_until" swaggertype:"string"`
}

func (r UpdatePermissionRequest) patch() permission.Patch {
	return permission.Patch{
		RoleName:   r.RoleName,
		LockerID:   r.LockerID,
		CanView:    r.CanView,
		CanOpen:    r.CanOpen,
		CanEdit:    r.CanEdit,
		CanTake:    r.CanTake,
		CanManage:  r.CanManage,
		ValidUntil: r.ValidUntil,
	}
}

// CreatePermission handles POST /permissions
//
//	@Summary		Create locker permission
//	@Description	Grant a role access rights on a locker. A role holds at most one permission per locker.
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePermissionRequest	true	"Permission"
//	@Success		201		{object}	utils.APIResponse{data=dto.PermissionDTO}
//	@Failure		409		{object}	utils.APIResponse
//	@Failure		422		{object}	utils.APIResponse
//	@Router			/permissions [post]
func (h *PermissionHandler) CreatePermission(c *gin.Context) {
	var req CreatePermissionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for create permission", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePermissionCommand{
		RoleName:   req.RoleName,
		LockerID:   req.LockerID,
		Access:     req.access(),
		ValidUntil: req.ValidUntil,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Permission created successfully")
}

// ListPermissions handles GET /permissions
//
//	@Summary	List locker permissions
//	@Tags		Permissions
//	@Produce	json
//	@Param		skip	query		int	false	"Records to skip"	default(0)
//	@Param		limit	query		int	false	"Page size"			default(100)
//	@Success	200		{object}	utils.APIResponse{data=utils.ListResponse{items=[]dto.PermissionDTO}}
//	@Failure	422		{object}	utils.APIResponse
//	@Router		/permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPermissionsQuery{
		Skip:  page.Skip,
		Limit: page.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result, len(result), page)
}

// GetPermission handles GET /permissions/:id
//
//	@Summary	Get locker permission
//	@Tags		Permissions
//	@Produce	json
//	@Param		id	path		int	true	"Permission ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.PermissionDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/permissions/{id} [get]
func (h *PermissionHandler) GetPermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePermission handles PUT /permissions/:id
//
//	@Summary		Update locker permission
//	@Description	Only the supplied fields change. Sending valid_until as null removes the expiry.
//	@Tags			Permissions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Permission ID"
//	@Param			request	body		UpdatePermissionRequest	true	"Fields to change"
//	@Success		200		{object}	utils.APIResponse{data=dto.PermissionDTO}
//	@Failure		404		{object}	utils.APIResponse
//	@Failure		409		{object}	utils.APIResponse
//	@Failure		422		{object}	utils.APIResponse
//	@Router			/permissions/{id} [put]
func (h *PermissionHandler) UpdatePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePermissionRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for update permission",
			"permission_id", id,
			"error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePermissionCommand{
		PermissionID: id,
		Patch:        req.patch(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Permission updated successfully", result)
}

// DeletePermission handles DELETE /permissions/:id
//
//	@Summary	Delete locker permission
//	@Tags		Permissions
//	@Produce	json
//	@Param		id	path		int	true	"Permission ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.PermissionDTO}
//	@Failure	404	{object}	utils.APIResponse
//	@Router		/permissions/{id} [delete]
func (h *PermissionHandler) DeletePermission(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Permission deleted successfully", result)
}

// ListLockerPermissions handles GET /permissions/locker/:locker_id
//
//	@Summary	List permissions on a locker
//	@Tags		Permissions
//	@Produce	json
//	@Param		locker_id	path		int	true	"Locker ID"
//	@Success	200			{object}	utils.APIResponse{data=[]dto.PermissionDTO}
//	@Router		/permissions/locker/{locker_id} [get]
func (h *PermissionHandler) ListLockerPermissions(c *gin.Context) {
	lockerID, err := utils.ParseIDParam(c, "locker_id", "locker")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listLockerUC.Execute(c.Request.Context(), lockerID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetRolePermission handles GET /permissions/locker/:locker_id/role/:role_name
//
//	@Summary	Get a role's permission on a locker
//	@Tags		Permissions
//	@Produce	json
//	@Param		locker_id	path		int		true	"Locker ID"
//	@Param		role_name	path		string	true	"Role name"
//	@Success	200			{object}	utils.APIResponse{data=dto.PermissionDTO}
//	@Failure	404			{object}	utils.APIResponse
//	@Router		/permissions/locker/{locker_id}/role/{role_name} [get]
func (h *PermissionHandler) GetRolePermission(c *gin.Context) {
	lockerID, err := utils.ParseIDParam(c, "locker_id", "locker")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	roleName, err := utils.RequireParam(c, "role_name")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getRoleUC.Execute(c.Request.Context(), usecases.GetRolePermissionQuery{
		RoleName: roleName,
		LockerID: lockerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
