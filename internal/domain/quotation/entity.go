package quotation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotSent guards every action in this workflow: only a quotation the
	// organization has actually sent can be accepted or rejected.
	ErrNotSent = errors.New("quotation is not in sent status")
)

type Quotation struct {
	id              uuid.UUID
	leadID          uuid.UUID
	title           Title
	amount          Money
	status          Status
	uploadedBy      uuid.UUID
	statusChangedAt *time.Time
	statusChangedBy *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func ReconstructQuotation(
	id, leadID uuid.UUID,
	title Title,
	amount Money,
	status Status,
	uploadedBy uuid.UUID,
	statusChangedAt *time.Time,
	statusChangedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Quotation {
	return &Quotation{
		id:              id,
		leadID:          leadID,
		title:           title,
		amount:          amount,
		status:          status,
		uploadedBy:      uploadedBy,
		statusChangedAt: statusChangedAt,
		statusChangedBy: statusChangedBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// GuardSendable fails unless the status currently accepts client actions.
// Callers must re-check inside their transaction: the status can change
// between a request and its confirmation.
func GuardSendable(s Status) error {
	if s != StatusSent {
		return ErrNotSent
	}
	return nil
}

func (q *Quotation) GuardSendable() error {
	return GuardSendable(q.status)
}

// ApplyAction performs the SENT -> ACCEPTED/REJECTED transition in memory.
// The persistence layer repeats the status predicate in its UPDATE so a
// concurrent transition cannot be applied twice.
func (q *Quotation) ApplyAction(action ActionType, actorID uuid.UUID, now time.Time) error {
	if err := q.GuardSendable(); err != nil {
		return err
	}
	q.status = action.TargetStatus()
	q.statusChangedAt = &now
	q.statusChangedBy = &actorID
	q.updatedAt = now
	return nil
}

func (q *Quotation) ID() uuid.UUID              { return q.id }
func (q *Quotation) LeadID() uuid.UUID          { return q.leadID }
func (q *Quotation) Title() Title               { return q.title }
func (q *Quotation) Amount() Money              { return q.amount }
func (q *Quotation) Status() Status             { return q.status }
func (q *Quotation) UploadedBy() uuid.UUID      { return q.uploadedBy }
func (q *Quotation) StatusChangedAt() *time.Time { return q.statusChangedAt }
func (q *Quotation) StatusChangedBy() *uuid.UUID { return q.statusChangedBy }
func (q *Quotation) CreatedAt() time.Time       { return q.createdAt }
func (q *Quotation) UpdatedAt() time.Time       { return q.updatedAt }
