//go:build unit

package quotation_test

import (
	"testing"
	"time"

	"quotation-portal/internal/domain/quotation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentQuotation(t *testing.T, status quotation.Status) *quotation.Quotation {
	t.Helper()

	title, err := quotation.NewTitle("Annual maintenance contract")
	require.NoError(t, err)
	amount, err := quotation.NewMoney(250000)
	require.NoError(t, err)

	now := time.Now()
	return quotation.ReconstructQuotation(
		uuid.New(), uuid.New(), title, amount, status, uuid.New(),
		nil, nil, now, now,
	)
}

func TestGuardSendable(t *testing.T) {
	cases := []struct {
		name   string
		status quotation.Status
		errIs  error
	}{
		{name: "sent accepts actions", status: quotation.StatusSent},
		{name: "uploaded rejects actions", status: quotation.StatusUploaded, errIs: quotation.ErrNotSent},
		{name: "accepted rejects actions", status: quotation.StatusAccepted, errIs: quotation.ErrNotSent},
		{name: "rejected rejects actions", status: quotation.StatusRejected, errIs: quotation.ErrNotSent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := quotation.GuardSendable(c.status)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestApplyAction(t *testing.T) {
	t.Run("accept transitions to ACCEPTED and records actor", func(t *testing.T) {
		q := sentQuotation(t, quotation.StatusSent)
		actorID := uuid.New()
		now := time.Now()

		err := q.ApplyAction(quotation.ActionAccept, actorID, now)
		require.NoError(t, err)

		assert.Equal(t, quotation.StatusAccepted, q.Status())
		require.NotNil(t, q.StatusChangedAt())
		assert.Equal(t, now, *q.StatusChangedAt())
		require.NotNil(t, q.StatusChangedBy())
		assert.Equal(t, actorID, *q.StatusChangedBy())
		assert.Equal(t, now, q.UpdatedAt())
	})

	t.Run("reject transitions to REJECTED", func(t *testing.T) {
		q := sentQuotation(t, quotation.StatusSent)

		err := q.ApplyAction(quotation.ActionReject, uuid.New(), time.Now())
		require.NoError(t, err)

		assert.Equal(t, quotation.StatusRejected, q.Status())
	})

	t.Run("terminal status does not transition again", func(t *testing.T) {
		q := sentQuotation(t, quotation.StatusSent)
		require.NoError(t, q.ApplyAction(quotation.ActionAccept, uuid.New(), time.Now()))

		err := q.ApplyAction(quotation.ActionReject, uuid.New(), time.Now())
		require.ErrorIs(t, err, quotation.ErrNotSent)
		assert.Equal(t, quotation.StatusAccepted, q.Status())
	})

	t.Run("uploaded quotation rejects actions without mutation", func(t *testing.T) {
		q := sentQuotation(t, quotation.StatusUploaded)

		err := q.ApplyAction(quotation.ActionAccept, uuid.New(), time.Now())
		require.ErrorIs(t, err, quotation.ErrNotSent)
		assert.Equal(t, quotation.StatusUploaded, q.Status())
		assert.Nil(t, q.StatusChangedAt())
		assert.Nil(t, q.StatusChangedBy())
	})
}

func TestActionType(t *testing.T) {
	t.Run("target status", func(t *testing.T) {
		assert.Equal(t, quotation.StatusAccepted, quotation.ActionAccept.TargetStatus())
		assert.Equal(t, quotation.StatusRejected, quotation.ActionReject.TargetStatus())
	})

	t.Run("past tense", func(t *testing.T) {
		assert.Equal(t, "accepted", quotation.ActionAccept.PastTense())
		assert.Equal(t, "rejected", quotation.ActionReject.PastTense())
	})

	t.Run("parsing", func(t *testing.T) {
		action, err := quotation.NewActionType("ACCEPT")
		require.NoError(t, err)
		assert.Equal(t, quotation.ActionAccept, action)

		_, err = quotation.NewActionType("approve")
		require.ErrorIs(t, err, quotation.ErrInvalidActionType)
	})
}

func TestStatus(t *testing.T) {
	t.Run("terminal statuses", func(t *testing.T) {
		assert.False(t, quotation.StatusUploaded.IsTerminal())
		assert.False(t, quotation.StatusSent.IsTerminal())
		assert.True(t, quotation.StatusAccepted.IsTerminal())
		assert.True(t, quotation.StatusRejected.IsTerminal())
	})

	t.Run("parsing rejects unknown values", func(t *testing.T) {
		_, err := quotation.NewStatus("DRAFT")
		require.ErrorIs(t, err, quotation.ErrInvalidStatus)
	})
}
