package repository

import (
	"context"
	"time"

	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/infra/db"

	"github.com/google/uuid"
)

// ActionRepository appends to the quotation_actions audit trail. Rows are
// never updated or deleted.
type ActionRepository struct{}

func NewActionRepository() *ActionRepository {
	return &ActionRepository{}
}

const insertActionSQL = `
INSERT INTO quotation_actions (id, quotation_id, user_id, action_type, performed_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *ActionRepository) Insert(
	ctx context.Context,
	tx db.DBTX,
	quotationID, userID uuid.UUID,
	action quotation.ActionType,
	performedAt time.Time,
) (uuid.UUID, error) {
	id := uuid.New()
	_, err := tx.Exec(ctx, insertActionSQL, id, quotationID, userID, action.String(), performedAt)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert quotation action", err, classifyPgError(err))
	}
	return id, nil
}
