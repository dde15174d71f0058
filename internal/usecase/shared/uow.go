package shared

import (
	"context"
	"time"

	"quotation-portal/internal/domain/otp"
	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Quotations() QuotationRepository
	Otps() OtpRepository
	Actions() ActionRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	QuotationByID(ctx context.Context, id uuid.UUID) (*QuotationSnapshot, error)
	ClientUserByID(ctx context.Context, id uuid.UUID) (*ClientUserSnapshot, error)
}

type QuotationRepository interface {
	// ApplyAction updates status with a `status = 'SENT'` predicate and
	// returns the number of rows affected; zero means a concurrent
	// transition already won.
	ApplyAction(ctx context.Context, tx db.DBTX, quotationID uuid.UUID, action quotation.ActionType, actorID uuid.UUID, now time.Time) (int64, error)
}

type OtpRepository interface {
	// SupersedeLive marks every live row of the (quotation, user) lineage
	// superseded so the subsequent Insert leaves exactly one live row.
	SupersedeLive(ctx context.Context, tx db.DBTX, quotationID, userID uuid.UUID, now time.Time) error
	Insert(ctx context.Context, tx db.DBTX, code *otp.OneTimeCode) error
	// FindLive returns the single live row for the pair, or a NOT_FOUND
	// repository error.
	FindLive(ctx context.Context, tx db.DBTX, quotationID, userID uuid.UUID, now time.Time) (*otp.OneTimeCode, error)
	// Consume sets consumed_at guarded by `consumed_at IS NULL AND
	// superseded_at IS NULL`; zero rows affected means another confirmation
	// got there first.
	Consume(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (int64, error)
}

type ActionRepository interface {
	Insert(ctx context.Context, tx db.DBTX, quotationID, userID uuid.UUID, action quotation.ActionType, performedAt time.Time) (uuid.UUID, error)
}
