package request

import (
	"strings"

	"quotation-portal/internal/domain/quotation"
)

type RequestActionRequest struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}

func (r *RequestActionRequest) ToDomain() (quotation.ActionType, error) {
	return quotation.NewActionType(strings.ToUpper(r.Action))
}

type ConfirmActionRequest struct {
	Code string `json:"code" binding:"required"`
}
