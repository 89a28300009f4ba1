package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/application/badge/dto"
	"github.com/smartlock-inc/smartlock/internal/application/badge/usecases"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/middleware"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
	"github.com/smartlock-inc/smartlock/internal/shared/utils"
)

var _ = dto.PendingCardDTO{}

type BadgeHandler struct {
	scanCardUC    usecases.ScanCardExecutor
	listPendingUC usecases.ListPendingCardsExecutor
	assignCardUC  usecases.AssignCardExecutor
	logger        logger.Interface
}

func NewBadgeHandler(
	scanCardUC usecases.ScanCardExecutor,
	listPendingUC usecases.ListPendingCardsExecutor,
	assignCardUC usecases.AssignCardExecutor,
	logger logger.Interface,
) *BadgeHandler {
	return &BadgeHandler{
		scanCardUC:    scanCardUC,
		listPendingUC: listPendingUC,
		assignCardUC:  assignCardUC,
		logger:        logger,
	}
}

type ScanCardRequest struct {
	CardID string `json:"card_id" binding:"required,max=255" example:"ABC123"`
}

// ScanCard handles POST /badge/scan
//
//	@Summary		Register a scanned badge
//	@Description	Called by the NFC scanner service. The card is stored as pending until an admin assigns it.
//	@Tags			Badges
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		ScanCardRequest	true	"Scanned card"
//	@Success		201		{object}	dto.ScanResultDTO
//	@Failure		401		{object}	utils.APIResponse
//	@Failure		403		{object}	utils.APIResponse
//	@Failure		409		{object}	utils.APIResponse
//	@Router			/badge/scan [post]
func (h *BadgeHandler) ScanCard(c *gin.Context) {
	var req ScanCardRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.WithContext(c.Request.Context()).Warnw("invalid request body for scan card", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.scanCardUC.Execute(c.Request.Context(), usecases.ScanCardCommand{
		CardID:    req.CardID,
		ScannedBy: callerName(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// the scanner firmware reads this body directly, so no envelope
	c.JSON(http.StatusCreated, result)
}

// ListPendingCards handles GET /badge/pending
//
//	@Summary	List cards awaiting assignment
//	@Tags		Badges
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	utils.APIResponse{data=[]dto.PendingCardDTO}
//	@Failure	401	{object}	utils.APIResponse
//	@Failure	403	{object}	utils.APIResponse
//	@Router		/badge/pending [get]
func (h *BadgeHandler) ListPendingCards(c *gin.Context) {
	result, err := h.listPendingUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AssignCard handles PATCH /badge/:card_id/assign
//
//	@Summary	Assign a pending card
//	@Tags		Badges
//	@Produce	json
//	@Security	BearerAuth
//	@Param		card_id	path		string	true	"Card ID"
//	@Success	200		{object}	utils.APIResponse{data=dto.PendingCardDTO}
//	@Failure	401		{object}	utils.APIResponse
//	@Failure	403		{object}	utils.APIResponse
//	@Failure	404		{object}	utils.APIResponse
//	@Router		/badge/{card_id}/assign [patch]
func (h *BadgeHandler) AssignCard(c *gin.Context) {
	cardID, err := utils.RequireParam(c, "card_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignCardUC.Execute(c.Request.Context(), usecases.AssignCardCommand{
		CardID:     cardID,
		AssignedBy: callerName(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Card assigned successfully", result)
}

func callerName(c *gin.Context) string {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return ""
	}
	if name := claims.Principal(); name != "" {
		return name
	}
	return claims.AuthorizedParty
}
