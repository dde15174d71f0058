//go:build unit

package otp_test

import (
	"testing"
	"time"

	"quotation-portal/internal/domain/otp"
	"quotation-portal/internal/domain/quotation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCodeFormat(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		errIs error
	}{
		{name: "six digits", code: "012345"},
		{name: "all zeros", code: "000000"},
		{name: "too short", code: "12345", errIs: otp.ErrMalformedCode},
		{name: "too long", code: "1234567", errIs: otp.ErrMalformedCode},
		{name: "empty", code: "", errIs: otp.ErrMalformedCode},
		{name: "letters", code: "12a456", errIs: otp.ErrMalformedCode},
		{name: "unicode digits", code: "１２３４５６", errIs: otp.ErrMalformedCode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := otp.ValidateCodeFormat(c.code)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := otp.GenerateCode()
		require.NoError(t, err)
		require.NoError(t, otp.ValidateCodeFormat(code))
	}
}

func TestHashAndCompare(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hash, err := otp.HashCode("123456")
		require.NoError(t, err)
		assert.NotEqual(t, "123456", hash)

		require.NoError(t, otp.CompareCode(hash, "123456"))
		require.ErrorIs(t, otp.CompareCode(hash, "654321"), otp.ErrCodeMismatch)
	})

	t.Run("malformed input never reaches the hash", func(t *testing.T) {
		hash, err := otp.HashCode("123456")
		require.NoError(t, err)
		require.ErrorIs(t, otp.CompareCode(hash, "12345"), otp.ErrMalformedCode)
	})
}

func TestIssue(t *testing.T) {
	quotationID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	ttl := 10 * time.Minute

	code, plaintext, err := otp.Issue(quotationID, userID, quotation.ActionAccept, now, ttl)
	require.NoError(t, err)
	require.NotNil(t, code)

	assert.NotEqual(t, uuid.Nil, code.ID())
	assert.Equal(t, quotationID, code.QuotationID())
	assert.Equal(t, userID, code.UserID())
	assert.Equal(t, quotation.ActionAccept, code.Action())
	assert.Equal(t, now.Add(ttl), code.ExpiresAt())
	assert.Equal(t, now, code.CreatedAt())
	assert.Nil(t, code.ConsumedAt())
	assert.Nil(t, code.SupersededAt())

	// The plaintext only matches its own hash.
	require.NoError(t, otp.ValidateCodeFormat(plaintext))
	assert.NotEqual(t, plaintext, code.CodeHash())
	assert.True(t, code.Matches(plaintext))
}

func TestIsLive(t *testing.T) {
	base := time.Now()
	ttl := 10 * time.Minute

	newCode := func(mutate func(consumedAt, supersededAt **time.Time)) *otp.OneTimeCode {
		var consumedAt, supersededAt *time.Time
		if mutate != nil {
			mutate(&consumedAt, &supersededAt)
		}
		return otp.ReconstructOneTimeCode(
			uuid.New(), uuid.New(), uuid.New(), quotation.ActionAccept,
			"$2a$10$fakehashfakehashfakehashfakehash", base.Add(ttl),
			consumedAt, supersededAt, base,
		)
	}

	t.Run("fresh code is live", func(t *testing.T) {
		assert.True(t, newCode(nil).IsLive(base))
	})

	t.Run("expired code is dead", func(t *testing.T) {
		assert.False(t, newCode(nil).IsLive(base.Add(ttl)))
		assert.False(t, newCode(nil).IsLive(base.Add(ttl+time.Second)))
	})

	t.Run("consumed code is dead even before expiry", func(t *testing.T) {
		code := newCode(func(consumedAt, _ **time.Time) {
			at := base.Add(time.Minute)
			*consumedAt = &at
		})
		assert.False(t, code.IsLive(base.Add(2*time.Minute)))
	})

	t.Run("superseded code is dead even before expiry", func(t *testing.T) {
		code := newCode(func(_, supersededAt **time.Time) {
			at := base.Add(time.Minute)
			*supersededAt = &at
		})
		assert.False(t, code.IsLive(base.Add(2*time.Minute)))
	})
}
