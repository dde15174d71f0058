package api

import (
	"errors"
	"net/http"

	reqdto "quotation-portal/internal/handler/dto/request"
	resdto "quotation-portal/internal/handler/dto/response"
	"quotation-portal/internal/handler/httperr"
	"quotation-portal/internal/handler/middleware"
	"quotation-portal/internal/pkg/errs"
	"quotation-portal/internal/usecase/commands"
	"quotation-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuotationHandler struct {
	cmds   commands.QuotationActionCommands
	q      queries.QuotationQueries
	access commands.AccessResolver
}

func NewQuotationHandler(cmds commands.QuotationActionCommands, q queries.QuotationQueries, access commands.AccessResolver) *QuotationHandler {
	return &QuotationHandler{cmds: cmds, q: q, access: access}
}

// @Summary Request quotation action
// @Description Request an OTP to accept or reject a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.RequestActionRequest true "Requested action"
// @Success 200 {object} resdto.RequestActionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotations/{id}/actions/request [post]
func (h *QuotationHandler) RequestAction(c *gin.Context) {
	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quotation id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.RequestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	action, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.RequestAction(c.Request.Context(), userID, quotationID, action)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestActionResult(result))
}

// @Summary Confirm quotation action
// @Description Confirm a previously requested action with a one-time code
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Param request body reqdto.ConfirmActionRequest true "One-time code"
// @Success 200 {object} resdto.ConfirmActionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /quotations/{id}/actions/confirm [post]
func (h *QuotationHandler) ConfirmAction(c *gin.Context) {
	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quotation id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.ConfirmActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.ConfirmAction(c.Request.Context(), userID, quotationID, req.Code)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmActionResult(result))
}

// @Summary Get quotation
// @Description Get a quotation within the caller's organization scope
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Quotation ID"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quotation id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	client, err := h.access.Resolve(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetForClient(c.Request.Context(), client.Access, quotationID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotationView(view))
}

func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrClientNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Client not found", nil)
	case errors.Is(err, errs.ErrQuotationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Quotation not found", nil)
	case errors.Is(err, errs.ErrQuotationNotSent):
		httperr.AbortWithError(c, http.StatusConflict, err, "Quotation is not awaiting action", nil)
	case errors.Is(err, errs.ErrInvalidOTP):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or expired OTP", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
