package errs

import "errors"

// Protocol-level sentinel errors shared by the usecase layers. Each maps to
// exactly one error code on the wire; see handler/api.
var (
	// ErrClientNotFound: identity resolved to no accessible client account.
	ErrClientNotFound = errors.New("client not found")

	// ErrQuotationNotFound covers both an absent quotation and one outside
	// the caller's organization scope, so existence never leaks.
	ErrQuotationNotFound = errors.New("quotation not found")

	// ErrQuotationNotSent: the quotation is not currently awaiting a client
	// action, including the case where a concurrent confirmation won.
	ErrQuotationNotSent = errors.New("quotation is not in sent status")

	// ErrInvalidOTP is deliberately generic: malformed, unknown, expired,
	// superseded and already-consumed codes all surface identically.
	ErrInvalidOTP = errors.New("invalid otp")
)
