//go:build unit

package shared_test

import (
	"testing"
	"time"

	"quotation-portal/internal/domain/quotation"
	"quotation-portal/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotationSnapshotEntity(t *testing.T) {
	t.Run("hydrates the aggregate from snapshot fields", func(t *testing.T) {
		snap := builder.NewQuotationBuilder().BuildSnapshot()

		ent, err := snap.Entity()
		require.NoError(t, err)

		assert.Equal(t, snap.ID, ent.ID())
		assert.Equal(t, snap.LeadID, ent.LeadID())
		assert.Equal(t, snap.Title, ent.Title().String())
		assert.Equal(t, snap.AmountCents, ent.Amount().Cents())
		assert.Equal(t, snap.Status, ent.Status())
		assert.Equal(t, snap.UploadedBy, ent.UploadedBy())
		assert.Equal(t, snap.CreatedAt, ent.CreatedAt())
		assert.Equal(t, snap.UpdatedAt, ent.UpdatedAt())
	})

	t.Run("hydrated aggregate runs transitions", func(t *testing.T) {
		snap := builder.NewQuotationBuilder().BuildSnapshot()
		ent, err := snap.Entity()
		require.NoError(t, err)

		actorID := uuid.New()
		now := time.Now()
		require.NoError(t, ent.ApplyAction(quotation.ActionAccept, actorID, now))
		assert.Equal(t, quotation.StatusAccepted, ent.Status())
	})

	t.Run("hydrated aggregate enforces the sent guard", func(t *testing.T) {
		snap := builder.NewQuotationBuilder().AsAccepted().BuildSnapshot()
		ent, err := snap.Entity()
		require.NoError(t, err)

		err = ent.ApplyAction(quotation.ActionReject, uuid.New(), time.Now())
		require.ErrorIs(t, err, quotation.ErrNotSent)
	})

	t.Run("rejects snapshots with invalid stored data", func(t *testing.T) {
		snap := builder.NewQuotationBuilder().WithTitle("").BuildSnapshot()
		_, err := snap.Entity()
		require.ErrorIs(t, err, quotation.ErrEmptyTitle)
	})
}
