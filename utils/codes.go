package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const confirmationAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ConfirmationCodeLength is the length of the public booking reference.
const ConfirmationCodeLength = 10

// GenerateConfirmationCode returns n uniform characters from the A-Z0-9
// alphabet. Uses crypto/rand with math/big to avoid modulo bias.
func GenerateConfirmationCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(confirmationAlphabet)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(confirmationAlphabet[num.Int64()])
	}
	return sb.String(), nil
}

// IsValidConfirmationCode reports whether code could have been produced by
// GenerateConfirmationCode at the standard length.
func IsValidConfirmationCode(code string) bool {
	if len(code) != ConfirmationCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(confirmationAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
