package readstore

import (
	"context"
	"errors"

	"quotation-portal/internal/domain/user"
	"quotation-portal/internal/infra"
	"quotation-portal/internal/infra/db"
	"quotation-portal/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const clientUserSQL = `
SELECT id, email, role, is_active, organization_id, lead_id
FROM users
WHERE id = $1`

func (r *UserReadStore) FindClientByID(ctx context.Context, id uuid.UUID) (*shared.ClientUserSnapshot, error) {
	var (
		snap shared.ClientUserSnapshot
		role string
	)

	err := r.db.QueryRow(ctx, clientUserSQL, id).Scan(
		&snap.ID, &snap.Email, &role, &snap.IsActive, &snap.OrganizationID, &snap.LeadID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	snap.Role, err = user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role in user row", err)
	}

	return &snap, nil
}
