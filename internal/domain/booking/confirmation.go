package booking

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const ConfirmationCodeLength = 10

// ConfirmationCode is handed to the guest and is enough to look up or cancel a
// booking without signing in.
type ConfirmationCode string

func ParseConfirmationCode(s string) (ConfirmationCode, error) {
	s = strings.TrimSpace(s)
	if len(s) != ConfirmationCodeLength {
		return "", ErrInvalidConfirmationCode
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", ErrInvalidConfirmationCode
		}
	}
	return ConfirmationCode(s), nil
}

func (c ConfirmationCode) String() string {
	return string(c)
}

type CodeGenerator interface {
	Generate() (ConfirmationCode, error)
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate() (ConfirmationCode, error) {
	var sb strings.Builder
	sb.Grow(ConfirmationCodeLength)
	ten := big.NewInt(10)
	for range ConfirmationCodeLength {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}
	return ConfirmationCode(sb.String()), nil
}
