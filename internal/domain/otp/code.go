package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// Codes are exactly 6 ASCII digits. Uniqueness only matters within a
// (quotation, user) pair, so collisions across pairs are irrelevant.
const CodeLength = 6

var (
	ErrMalformedCode  = errors.New("code must be exactly 6 digits")
	ErrCodeMismatch   = errors.New("code does not match")
	ErrHashingFailed  = errors.New("code hashing failed")
	ErrGenerateFailed = errors.New("code generation failed")
)

var codeSpace = big.NewInt(1000000)

// GenerateCode draws a code from a cryptographically secure source; a linear
// counter or math/rand would make codes predictable.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", ErrGenerateFailed
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// HashCode returns a one-way hash; the plaintext is never persisted.
func HashCode(code string) (string, error) {
	if err := ValidateCodeFormat(code); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func CompareCode(codeHash, code string) error {
	if err := ValidateCodeFormat(code); err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(codeHash), []byte(code)); err != nil {
		return ErrCodeMismatch
	}
	return nil
}

func ValidateCodeFormat(code string) error {
	if len(code) != CodeLength {
		return ErrMalformedCode
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return ErrMalformedCode
		}
	}
	return nil
}
