package shared

import (
	"time"

	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/domain/user"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side reads (CQRS separation from query views).

type QuotationSnapshot struct {
	ID              uuid.UUID
	LeadID          uuid.UUID
	OrganizationID  uuid.UUID
	Title           string
	AmountCents     int64
	Status          quotation.Status
	UploadedBy      uuid.UUID
	StatusChangedAt *time.Time
	StatusChangedBy *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Stakeholder addresses for OTP fan-out, joined in one read.
	LeadContactEmail  string
	OrganizationEmail string
	UploaderEmail     string
}

// Entity hydrates the quotation aggregate from the snapshot so commands run
// transitions through the domain layer instead of reimplementing them.
func (s *QuotationSnapshot) Entity() (*quotation.Quotation, error) {
	title, err := quotation.NewTitle(s.Title)
	if err != nil {
		return nil, err
	}
	amount, err := quotation.NewMoney(s.AmountCents)
	if err != nil {
		return nil, err
	}
	return quotation.ReconstructQuotation(
		s.ID, s.LeadID, title, amount, s.Status, s.UploadedBy,
		s.StatusChangedAt, s.StatusChangedBy, s.CreatedAt, s.UpdatedAt,
	), nil
}

type ClientUserSnapshot struct {
	ID             uuid.UUID
	Email          string
	Role           user.Role
	IsActive       bool
	OrganizationID *uuid.UUID
	LeadID         *uuid.UUID
}
