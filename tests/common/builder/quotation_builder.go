//go:build unit || e2e

package builder

import (
	"time"

	"quotation-portal/internal/domain/quotation"
	reqdto "quotation-portal/internal/handler/dto/request"
	"quotation-portal/internal/usecase/queries"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuotationBuilder struct {
	ID                uuid.UUID
	LeadID            uuid.UUID
	OrganizationID    uuid.UUID
	Title             string
	AmountCents       int64
	Status            string
	UploadedBy        uuid.UUID
	StatusChangedAt   *time.Time
	StatusChangedBy   *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LeadContactEmail  string
	OrganizationEmail string
	UploaderEmail     string
}

func NewQuotationBuilder() *QuotationBuilder {
	now := time.Now()
	return &QuotationBuilder{
		ID:                uuid.New(),
		LeadID:            uuid.New(),
		OrganizationID:    uuid.New(),
		Title:             "Annual maintenance contract",
		AmountCents:       250000,
		Status:            "SENT",
		UploadedBy:        uuid.New(),
		CreatedAt:         now,
		UpdatedAt:         now,
		LeadContactEmail:  "lead@example.com",
		OrganizationEmail: "org@example.com",
		UploaderEmail:     "uploader@example.com",
	}
}

func (b *QuotationBuilder) With(mutate func(*QuotationBuilder)) *QuotationBuilder {
	mutate(b)
	return b
}

func (b *QuotationBuilder) BuildSnapshot() *shared.QuotationSnapshot {
	return &shared.QuotationSnapshot{
		ID:                b.ID,
		LeadID:            b.LeadID,
		OrganizationID:    b.OrganizationID,
		Title:             b.Title,
		AmountCents:       b.AmountCents,
		Status:            mustStatus(b.Status),
		UploadedBy:        b.UploadedBy,
		StatusChangedAt:   b.StatusChangedAt,
		StatusChangedBy:   b.StatusChangedBy,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
		LeadContactEmail:  b.LeadContactEmail,
		OrganizationEmail: b.OrganizationEmail,
		UploaderEmail:     b.UploaderEmail,
	}
}

func (b *QuotationBuilder) BuildViewQuery() *queries.QuotationView {
	return &queries.QuotationView{
		ID:              b.ID,
		LeadID:          b.LeadID,
		OrganizationID:  b.OrganizationID,
		Title:           b.Title,
		AmountCents:     b.AmountCents,
		Status:          b.Status,
		StatusChangedAt: b.StatusChangedAt,
		StatusChangedBy: b.StatusChangedBy,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *QuotationBuilder) BuildRequestActionDTO() reqdto.RequestActionRequest {
	return reqdto.RequestActionRequest{Action: "accept"}
}

func (b *QuotationBuilder) BuildConfirmActionDTO(code string) reqdto.ConfirmActionRequest {
	return reqdto.ConfirmActionRequest{Code: code}
}

// Fluent builder methods
func (b *QuotationBuilder) WithID(id uuid.UUID) *QuotationBuilder {
	b.ID = id
	return b
}

func (b *QuotationBuilder) WithLeadID(leadID uuid.UUID) *QuotationBuilder {
	b.LeadID = leadID
	return b
}

func (b *QuotationBuilder) WithOrganizationID(orgID uuid.UUID) *QuotationBuilder {
	b.OrganizationID = orgID
	return b
}

func (b *QuotationBuilder) WithTitle(title string) *QuotationBuilder {
	b.Title = title
	return b
}

func (b *QuotationBuilder) WithAmountCents(amount int64) *QuotationBuilder {
	b.AmountCents = amount
	return b
}

func (b *QuotationBuilder) WithStatus(status string) *QuotationBuilder {
	b.Status = status
	return b
}

func (b *QuotationBuilder) AsUploaded() *QuotationBuilder {
	b.Status = "UPLOADED"
	return b
}

func (b *QuotationBuilder) AsAccepted() *QuotationBuilder {
	b.Status = "ACCEPTED"
	return b
}

func (b *QuotationBuilder) AsRejected() *QuotationBuilder {
	b.Status = "REJECTED"
	return b
}

func mustStatus(s string) quotation.Status {
	status, err := quotation.NewStatus(s)
	if err != nil {
		panic("builder: " + err.Error())
	}
	return status
}
