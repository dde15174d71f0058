package response

import (
	"quotation-portal/internal/usecase/commands"
	"quotation-portal/internal/usecase/queries"
)

type QuotationResponse struct {
	ID              string  `json:"id"`
	LeadID          string  `json:"lead_id"`
	OrganizationID  string  `json:"organization_id"`
	Title           string  `json:"title"`
	AmountCents     int64   `json:"amount_cents"`
	Status          string  `json:"status"`
	StatusChangedAt *int64  `json:"status_changed_at,omitempty"`
	StatusChangedBy *string `json:"status_changed_by,omitempty"`
	CreatedAt       int64   `json:"created_at"`
	UpdatedAt       int64   `json:"updated_at"`
}

func FromQuotationView(v *queries.QuotationView) *QuotationResponse {
	resp := &QuotationResponse{
		ID:             v.ID.String(),
		LeadID:         v.LeadID.String(),
		OrganizationID: v.OrganizationID.String(),
		Title:          v.Title,
		AmountCents:    v.AmountCents,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt.Unix(),
		UpdatedAt:      v.UpdatedAt.Unix(),
	}
	if v.StatusChangedAt != nil {
		ts := v.StatusChangedAt.Unix()
		resp.StatusChangedAt = &ts
	}
	if v.StatusChangedBy != nil {
		id := v.StatusChangedBy.String()
		resp.StatusChangedBy = &id
	}
	return resp
}

type RequestActionResponse struct {
	Message string `json:"message"`
}

func FromRequestActionResult(r *commands.RequestActionResult) *RequestActionResponse {
	return &RequestActionResponse{Message: r.Message}
}

type ConfirmActionResponse struct {
	Message   string             `json:"message"`
	Quotation *QuotationResponse `json:"quotation"`
}

func FromConfirmActionResult(r *commands.ConfirmActionResult) *ConfirmActionResponse {
	resp := &ConfirmActionResponse{Message: r.Message}
	// The view can be absent when the post-commit re-read failed; the
	// confirmation itself still succeeded.
	if r.Quotation != nil {
		resp.Quotation = FromQuotationView(r.Quotation)
	}
	return resp
}
