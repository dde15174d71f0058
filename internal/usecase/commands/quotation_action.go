package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quotation-portal/internal/domain/otp"
	"quotation-portal/internal/domain/quotation"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/pkg/clock"
	"quotation-portal/internal/pkg/errs"
	"quotation-portal/internal/usecase/queries"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestActionResult struct {
	Message string
}

type ConfirmActionResult struct {
	Message   string
	Quotation *queries.QuotationView
}

// QuotationActionCommands coordinates the two-phase, OTP-gated accept/reject
// workflow. Each operation is one transaction; notification dispatch happens
// strictly after commit so a mail failure can never roll back a persisted
// state change.
type QuotationActionCommands interface {
	RequestAction(ctx context.Context, userID, quotationID uuid.UUID, action quotation.ActionType) (*RequestActionResult, error)
	ConfirmAction(ctx context.Context, userID, quotationID uuid.UUID, code string) (*ConfirmActionResult, error)
}

type quotationActionUseCaseImpl struct {
	uow              shared.UnitOfWork
	access           AccessResolver
	notifier         Notifier
	quotationQueries queries.QuotationQueries
	clock            clock.Clock
	otpTTL           time.Duration
}

func NewQuotationActionCommands(
	uow shared.UnitOfWork,
	access AccessResolver,
	notifier Notifier,
	quotationQueries queries.QuotationQueries,
	clk clock.Clock,
	otpTTL time.Duration,
) QuotationActionCommands {
	return &quotationActionUseCaseImpl{
		uow:              uow,
		access:           access,
		notifier:         notifier,
		quotationQueries: quotationQueries,
		clock:            clk,
		otpTTL:           otpTTL,
	}
}

func (c *quotationActionUseCaseImpl) RequestAction(
	ctx context.Context,
	userID, quotationID uuid.UUID,
	action quotation.ActionType,
) (*RequestActionResult, error) {
	client, err := c.access.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		snap      *shared.QuotationSnapshot
		plaintext string
		expiresAt time.Time
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, txErr := tx.Reads().QuotationByID(ctx, quotationID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrQuotationNotFound
			}
			return txErr
		}
		if !client.Access.CanAccess(s) {
			// Indistinguishable from absent so other organizations'
			// quotations never leak.
			return errs.ErrQuotationNotFound
		}
		ent, txErr := s.Entity()
		if txErr != nil {
			return txErr
		}
		if txErr = ent.GuardSendable(); txErr != nil {
			return errs.ErrQuotationNotSent
		}

		now := c.clock.Now()
		code, plain, txErr := otp.Issue(quotationID, userID, action, now, c.otpTTL)
		if txErr != nil {
			return txErr
		}

		// Supersede-then-insert in one transaction keeps the "at most one
		// live code per (quotation, user)" invariant under concurrent
		// requests: the last committed transaction wins.
		if txErr = tx.Otps().SupersedeLive(ctx, tx.DB(), quotationID, userID, now); txErr != nil {
			return txErr
		}
		if txErr = tx.Otps().Insert(ctx, tx.DB(), code); txErr != nil {
			return txErr
		}

		snap = s
		plaintext = plain
		expiresAt = code.ExpiresAt()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifyStakeholders(ctx, client, snap, action, plaintext, expiresAt)

	return &RequestActionResult{Message: "OTP sent to your registered email"}, nil
}

func (c *quotationActionUseCaseImpl) ConfirmAction(
	ctx context.Context,
	userID, quotationID uuid.UUID,
	code string,
) (*ConfirmActionResult, error) {
	// Fast path: reject malformed codes before touching the database.
	if err := otp.ValidateCodeFormat(code); err != nil {
		return nil, errs.ErrInvalidOTP
	}

	var action quotation.ActionType
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		live, txErr := tx.Otps().FindLive(ctx, tx.DB(), quotationID, userID, now)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrInvalidOTP
			}
			return txErr
		}
		if !live.Matches(code) {
			return errs.ErrInvalidOTP
		}

		affected, txErr := tx.Otps().Consume(ctx, tx.DB(), live.ID(), now)
		if txErr != nil {
			return txErr
		}
		if affected == 0 {
			// A concurrent confirmation consumed the row first.
			return errs.ErrInvalidOTP
		}

		snap, txErr := tx.Reads().QuotationByID(ctx, quotationID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return errs.ErrQuotationNotFound
			}
			return txErr
		}
		ent, txErr := snap.Entity()
		if txErr != nil {
			return txErr
		}

		// Race-closing recheck: the transition runs through the aggregate,
		// which refuses anything no longer in SENT status.
		action = live.Action()
		if txErr = ent.ApplyAction(action, userID, now); txErr != nil {
			return errs.ErrQuotationNotSent
		}

		affected, txErr = tx.Quotations().ApplyAction(ctx, tx.DB(), quotationID, action, userID, now)
		if txErr != nil {
			return txErr
		}
		if affected == 0 {
			// The status predicate is the final arbiter of cross-user races.
			return errs.ErrQuotationNotSent
		}

		_, txErr = tx.Actions().Insert(ctx, tx.DB(), quotationID, userID, action, now)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the complete view from the read store. The
	// transition is already committed, so a failed re-read must not surface
	// as a failed confirmation; degrade to the message alone.
	view, err := c.quotationQueries.GetByIDSystem(ctx, quotationID)
	if err != nil {
		slog.Warn("failed to re-read quotation after confirmation",
			"quotation_id", quotationID,
			"error", err)
	}

	return &ConfirmActionResult{
		Message:   fmt.Sprintf("Quotation %s successfully", action.PastTense()),
		Quotation: view,
	}, nil
}

func (c *quotationActionUseCaseImpl) notifyStakeholders(
	ctx context.Context,
	client *ResolvedClient,
	snap *shared.QuotationSnapshot,
	action quotation.ActionType,
	plaintext string,
	expiresAt time.Time,
) {
	recipients := dedupeRecipients([]Recipient{
		{Email: client.Email},
		{Email: snap.LeadContactEmail},
		{Email: snap.OrganizationEmail},
		{Email: snap.UploaderEmail},
	})

	n := OtpIssuedNotification{
		Code:           plaintext,
		QuotationTitle: snap.Title,
		Action:         action,
		ExpiresAt:      expiresAt,
	}

	if err := c.notifier.NotifyOtpIssued(ctx, recipients, n); err != nil {
		// The OTP is already committed; the user can retry via a fresh
		// request, so dispatch failure must not fail the operation.
		slog.Warn("failed to dispatch OTP notification",
			"quotation_id", snap.ID,
			"user_id", client.Access.UserID,
			"error", err)
	}
}

func dedupeRecipients(in []Recipient) []Recipient {
	seen := make(map[string]struct{}, len(in))
	out := make([]Recipient, 0, len(in))
	for _, r := range in {
		if r.Email == "" {
			continue
		}
		if _, ok := seen[r.Email]; ok {
			continue
		}
		seen[r.Email] = struct{}{}
		out = append(out, r)
	}
	return out
}
