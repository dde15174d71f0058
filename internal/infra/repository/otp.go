package repository

import (
	"context"
	"errors"
	"time"

	"quotation-portal/internal/domain/otp"
	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OtpRepository struct{}

func NewOtpRepository() *OtpRepository {
	return &OtpRepository{}
}

const supersedeLiveOtpsSQL = `
UPDATE quotation_otps
SET superseded_at = $3
WHERE quotation_id = $1
  AND user_id = $2
  AND consumed_at IS NULL
  AND superseded_at IS NULL
  AND expires_at > $3`

func (r *OtpRepository) SupersedeLive(ctx context.Context, tx db.DBTX, quotationID, userID uuid.UUID, now time.Time) error {
	if _, err := tx.Exec(ctx, supersedeLiveOtpsSQL, quotationID, userID, now); err != nil {
		return infra.WrapRepoErr("failed to supersede live otps", err, classifyPgError(err))
	}
	return nil
}

const insertOtpSQL = `
INSERT INTO quotation_otps (id, quotation_id, user_id, action_type, code_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *OtpRepository) Insert(ctx context.Context, tx db.DBTX, code *otp.OneTimeCode) error {
	_, err := tx.Exec(ctx, insertOtpSQL,
		code.ID(),
		code.QuotationID(),
		code.UserID(),
		code.Action().String(),
		code.CodeHash(),
		code.ExpiresAt(),
		code.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert otp", err, classifyPgError(err))
	}
	return nil
}

// FOR UPDATE serializes concurrent confirmations on the same live row; the
// loser then sees zero rows from Consume.
const findLiveOtpSQL = `
SELECT id, quotation_id, user_id, action_type, code_hash, expires_at, consumed_at, superseded_at, created_at
FROM quotation_otps
WHERE quotation_id = $1
  AND user_id = $2
  AND consumed_at IS NULL
  AND superseded_at IS NULL
  AND expires_at > $3
ORDER BY created_at DESC
LIMIT 1
FOR UPDATE`

func (r *OtpRepository) FindLive(ctx context.Context, tx db.DBTX, quotationID, userID uuid.UUID, now time.Time) (*otp.OneTimeCode, error) {
	var (
		id, qID, uID uuid.UUID
		actionType   string
		codeHash     string
		expiresAt    time.Time
		consumedAt   *time.Time
		supersededAt *time.Time
		createdAt    time.Time
	)

	err := tx.QueryRow(ctx, findLiveOtpSQL, quotationID, userID, now).Scan(
		&id, &qID, &uID, &actionType, &codeHash, &expiresAt, &consumedAt, &supersededAt, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("live otp not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find live otp", err)
	}

	action, err := quotation.NewActionType(actionType)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid action type in otp row", err)
	}

	return otp.ReconstructOneTimeCode(id, qID, uID, action, codeHash, expiresAt, consumedAt, supersededAt, createdAt), nil
}

const consumeOtpSQL = `
UPDATE quotation_otps
SET consumed_at = $2
WHERE id = $1
  AND consumed_at IS NULL
  AND superseded_at IS NULL`

func (r *OtpRepository) Consume(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, consumeOtpSQL, id, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to consume otp", err)
	}
	return tag.RowsAffected(), nil
}
