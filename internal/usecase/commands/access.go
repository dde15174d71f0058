package commands

import (
	"context"

	"quotation-portal/internal/domain/user"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/pkg/errs"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
)

type accessResolverImpl struct {
	reads shared.CommandReads
}

func NewAccessResolver(uow shared.UnitOfWork) AccessResolver {
	return &accessResolverImpl{reads: uow.CommandReads()}
}

func (r *accessResolverImpl) Resolve(ctx context.Context, userID uuid.UUID) (*ResolvedClient, error) {
	snap, err := r.reads.ClientUserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrClientNotFound
		}
		return nil, err
	}

	if snap.Role != user.RoleClient || !snap.IsActive || snap.OrganizationID == nil {
		return nil, errs.ErrClientNotFound
	}

	return &ResolvedClient{
		Access: shared.AccessContext{
			UserID:         snap.ID,
			OrganizationID: *snap.OrganizationID,
			LeadID:         snap.LeadID,
		},
		Email: snap.Email,
	}, nil
}
