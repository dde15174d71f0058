package repository

import (
	"context"
	"errors"
	"time"

	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type QuotationRepository struct{}

func NewQuotationRepository() *QuotationRepository {
	return &QuotationRepository{}
}

// The status predicate makes the transition single-shot: once a concurrent
// confirmation moved the row out of SENT, this update matches nothing.
const applyQuotationActionSQL = `
UPDATE quotations
SET status = $2,
    status_changed_at = $4,
    status_changed_by = $3,
    updated_at = $4
WHERE id = $1
  AND status = 'SENT'`

func (r *QuotationRepository) ApplyAction(
	ctx context.Context,
	tx db.DBTX,
	quotationID uuid.UUID,
	action quotation.ActionType,
	actorID uuid.UUID,
	now time.Time,
) (int64, error) {
	tag, err := tx.Exec(ctx, applyQuotationActionSQL,
		quotationID,
		action.TargetStatus().String(),
		actorID,
		now,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to apply quotation action", err, classifyPgError(err))
	}
	return tag.RowsAffected(), nil
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func classifyPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return infra.KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return infra.KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return infra.KindForeignKeyViolated
	default:
		return infra.KindDBFailure
	}
}
