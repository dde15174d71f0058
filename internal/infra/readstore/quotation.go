package readstore

import (
	"context"
	"errors"
	"time"

	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/infra/db"
	"quotation-portal/internal/usecase/queries"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type QuotationReadStore struct {
	db db.DBTX
}

func NewQuotationReadStore(dbtx db.DBTX) *QuotationReadStore {
	return &QuotationReadStore{db: dbtx}
}

// One read fetches the quotation plus every stakeholder address the OTP
// fan-out needs (lead contact, organization contact, uploader).
const quotationSnapshotSQL = `
SELECT q.id, q.lead_id, l.organization_id, q.title, q.amount_cents, q.status,
       q.uploaded_by, q.status_changed_at, q.status_changed_by,
       q.created_at, q.updated_at,
       l.contact_email, o.contact_email, u.email
FROM quotations q
JOIN leads l ON l.id = q.lead_id
JOIN organizations o ON o.id = l.organization_id
JOIN users u ON u.id = q.uploaded_by
WHERE q.id = $1`

func (r *QuotationReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.QuotationSnapshot, error) {
	var (
		snap   shared.QuotationSnapshot
		status string
	)

	err := r.db.QueryRow(ctx, quotationSnapshotSQL, id).Scan(
		&snap.ID, &snap.LeadID, &snap.OrganizationID, &snap.Title, &snap.AmountCents, &status,
		&snap.UploadedBy, &snap.StatusChangedAt, &snap.StatusChangedBy,
		&snap.CreatedAt, &snap.UpdatedAt,
		&snap.LeadContactEmail, &snap.OrganizationEmail, &snap.UploaderEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quotation by ID", err)
	}

	snap.Status, err = quotation.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid status in quotation row", err)
	}

	return &snap, nil
}

const quotationViewSQL = `
SELECT q.id, q.lead_id, l.organization_id, q.title, q.amount_cents, q.status,
       q.status_changed_at, q.status_changed_by, q.created_at, q.updated_at
FROM quotations q
JOIN leads l ON l.id = q.lead_id
WHERE q.id = $1`

func (r *QuotationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.QuotationView, error) {
	var (
		view            queries.QuotationView
		statusChangedAt *time.Time
		statusChangedBy *uuid.UUID
	)

	err := r.db.QueryRow(ctx, quotationViewSQL, id).Scan(
		&view.ID, &view.LeadID, &view.OrganizationID, &view.Title, &view.AmountCents, &view.Status,
		&statusChangedAt, &statusChangedBy, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quotation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quotation view by ID", err)
	}

	view.StatusChangedAt = statusChangedAt
	view.StatusChangedBy = statusChangedBy

	return &view, nil
}
