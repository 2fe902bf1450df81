package common

import (
	"crypto/rand"
	"math/big"
)

// MakeRandDigitCode generates a random numeric code of the given length using
// crypto/rand, suitable for one-time passwords sent over e-mail.
func MakeRandDigitCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code[i] = byte(n.Int64()) + '0'
	}
	return string(code), nil
}
