package commands

import (
	"context"
	"time"

	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

// AccessResolver resolves a caller into their authorized organization scope.
// Fails with errs.ErrClientNotFound for missing, non-client or inactive users.
type AccessResolver interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*ResolvedClient, error)
}

type ResolvedClient struct {
	Access shared.AccessContext
	Email  string
}

// Notifier is the external dispatch collaborator. Implementations are
// best-effort: the coordinator invokes it only after commit and never lets a
// dispatch failure surface to the caller.
type Notifier interface {
	NotifyOtpIssued(ctx context.Context, recipients []Recipient, n OtpIssuedNotification) error
}

type Recipient struct {
	Email string
}

type OtpIssuedNotification struct {
	Code           string
	QuotationTitle string
	Action         quotation.ActionType
	ExpiresAt      time.Time
}
