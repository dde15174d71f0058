//go:build unit || e2e

package builder

import (
	"quotation-portal/internal/domain/user"
	"quotation-portal/internal/usecase/commands"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientUserBuilder struct {
	ID             uuid.UUID
	Email          string
	Role           user.Role
	IsActive       bool
	OrganizationID *uuid.UUID
	LeadID         *uuid.UUID
}

func NewClientUserBuilder() *ClientUserBuilder {
	orgID := uuid.New()
	return &ClientUserBuilder{
		ID:             uuid.New(),
		Email:          "client@example.com",
		Role:           user.RoleClient,
		IsActive:       true,
		OrganizationID: &orgID,
	}
}

func (b *ClientUserBuilder) With(mutate func(*ClientUserBuilder)) *ClientUserBuilder {
	mutate(b)
	return b
}

func (b *ClientUserBuilder) BuildSnapshot() *shared.ClientUserSnapshot {
	return &shared.ClientUserSnapshot{
		ID:             b.ID,
		Email:          b.Email,
		Role:           b.Role,
		IsActive:       b.IsActive,
		OrganizationID: b.OrganizationID,
		LeadID:         b.LeadID,
	}
}

func (b *ClientUserBuilder) BuildResolved() *commands.ResolvedClient {
	return &commands.ResolvedClient{
		Access: shared.AccessContext{
			UserID:         b.ID,
			OrganizationID: *b.OrganizationID,
			LeadID:         b.LeadID,
		},
		Email: b.Email,
	}
}

// Fluent builder methods
func (b *ClientUserBuilder) WithID(id uuid.UUID) *ClientUserBuilder {
	b.ID = id
	return b
}

func (b *ClientUserBuilder) WithEmail(email string) *ClientUserBuilder {
	b.Email = email
	return b
}

func (b *ClientUserBuilder) WithRole(role user.Role) *ClientUserBuilder {
	b.Role = role
	return b
}

func (b *ClientUserBuilder) WithOrganizationID(orgID uuid.UUID) *ClientUserBuilder {
	b.OrganizationID = &orgID
	return b
}

func (b *ClientUserBuilder) WithLeadID(leadID uuid.UUID) *ClientUserBuilder {
	b.LeadID = &leadID
	return b
}

func (b *ClientUserBuilder) AsInactive() *ClientUserBuilder {
	b.IsActive = false
	return b
}

func (b *ClientUserBuilder) AsStaff() *ClientUserBuilder {
	b.Role = user.RoleStaff
	return b
}
