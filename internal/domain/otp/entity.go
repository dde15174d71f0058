package otp

import (
	"time"

	"quotation-portal/internal/domain/quotation"

	"github.com/google/uuid"
)

// OneTimeCode is one row of the (quotation, user) OTP lineage. Rows are never
// deleted; they end up consumed, superseded, or expired.
type OneTimeCode struct {
	id           uuid.UUID
	quotationID  uuid.UUID
	userID       uuid.UUID
	action       quotation.ActionType
	codeHash     string
	expiresAt    time.Time
	consumedAt   *time.Time
	supersededAt *time.Time
	createdAt    time.Time
}

// Issue creates a fresh code and returns its plaintext alongside the entity.
// The plaintext exists only on this call path; callers hand it to the
// notification dispatcher and drop it.
func Issue(quotationID, userID uuid.UUID, action quotation.ActionType, now time.Time, ttl time.Duration) (*OneTimeCode, string, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, "", err
	}

	hash, err := HashCode(code)
	if err != nil {
		return nil, "", err
	}

	return &OneTimeCode{
		id:          uuid.New(),
		quotationID: quotationID,
		userID:      userID,
		action:      action,
		codeHash:    hash,
		expiresAt:   now.Add(ttl),
		createdAt:   now,
	}, code, nil
}

func ReconstructOneTimeCode(
	id, quotationID, userID uuid.UUID,
	action quotation.ActionType,
	codeHash string,
	expiresAt time.Time,
	consumedAt, supersededAt *time.Time,
	createdAt time.Time,
) *OneTimeCode {
	return &OneTimeCode{
		id:           id,
		quotationID:  quotationID,
		userID:       userID,
		action:       action,
		codeHash:     codeHash,
		expiresAt:    expiresAt,
		consumedAt:   consumedAt,
		supersededAt: supersededAt,
		createdAt:    createdAt,
	}
}

// IsLive reports whether this row can still be consumed: not consumed, not
// superseded, not expired.
func (o *OneTimeCode) IsLive(now time.Time) bool {
	return o.consumedAt == nil && o.supersededAt == nil && now.Before(o.expiresAt)
}

func (o *OneTimeCode) Matches(code string) bool {
	return CompareCode(o.codeHash, code) == nil
}

func (o *OneTimeCode) ID() uuid.UUID                 { return o.id }
func (o *OneTimeCode) QuotationID() uuid.UUID        { return o.quotationID }
func (o *OneTimeCode) UserID() uuid.UUID             { return o.userID }
func (o *OneTimeCode) Action() quotation.ActionType  { return o.action }
func (o *OneTimeCode) CodeHash() string              { return o.codeHash }
func (o *OneTimeCode) ExpiresAt() time.Time          { return o.expiresAt }
func (o *OneTimeCode) ConsumedAt() *time.Time        { return o.consumedAt }
func (o *OneTimeCode) SupersededAt() *time.Time      { return o.supersededAt }
func (o *OneTimeCode) CreatedAt() time.Time          { return o.createdAt }
