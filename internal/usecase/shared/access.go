package shared

import "github.com/google/uuid"

// AccessContext is the caller's authorized organization scope, derived per
// request and never persisted. A lead-scoped context additionally restricts
// access to quotations of that single lead.
type AccessContext struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	LeadID         *uuid.UUID
}

func (a AccessContext) CanAccessScope(organizationID, leadID uuid.UUID) bool {
	if a.OrganizationID != organizationID {
		return false
	}
	if a.LeadID != nil && *a.LeadID != leadID {
		return false
	}
	return true
}

func (a AccessContext) CanAccess(q *QuotationSnapshot) bool {
	return a.CanAccessScope(q.OrganizationID, q.LeadID)
}
