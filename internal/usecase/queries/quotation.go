package queries

import (
	"context"
	"time"

	"quotation-portal/internal/infra"
	"quotation-portal/internal/pkg/errs"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type QuotationView struct {
	ID              uuid.UUID  `json:"id"`
	LeadID          uuid.UUID  `json:"lead_id"`
	OrganizationID  uuid.UUID  `json:"organization_id"`
	Title           string     `json:"title"`
	AmountCents     int64      `json:"amount_cents"`
	Status          string     `json:"status"`
	StatusChangedAt *time.Time `json:"status_changed_at,omitempty"`
	StatusChangedBy *uuid.UUID `json:"status_changed_by,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type QuotationReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*QuotationView, error)
}

type QuotationQueries interface {
	// GetForClient scopes the read to the caller's organization; rows outside
	// the scope are indistinguishable from absent ones.
	GetForClient(ctx context.Context, access shared.AccessContext, id uuid.UUID) (*QuotationView, error)
	// GetByIDSystem bypasses scoping for read-after-write inside commands.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*QuotationView, error)
}

type quotationQueriesImpl struct {
	readStore QuotationReadStore
}

func NewQuotationQueries(readStore QuotationReadStore) QuotationQueries {
	return &quotationQueriesImpl{readStore: readStore}
}

func (q *quotationQueriesImpl) GetForClient(ctx context.Context, access shared.AccessContext, id uuid.UUID) (*QuotationView, error) {
	view, err := q.readStore.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuotationNotFound
		}
		return nil, err
	}

	if !access.CanAccessScope(view.OrganizationID, view.LeadID) {
		return nil, errs.ErrQuotationNotFound
	}

	return view, nil
}

func (q *quotationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*QuotationView, error) {
	view, err := q.readStore.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuotationNotFound
		}
		return nil, err
	}
	return view, nil
}
