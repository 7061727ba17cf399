package security

import (
	"crypto/subtle"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"golang.org/x/crypto/bcrypt"
)

const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// NewScheme returns the credential scheme registered under name.
func NewScheme(name string) (auth.CredentialScheme, error) {
	switch name {
	case SchemePlain:
		return PlainScheme{}, nil
	case SchemeBcrypt:
		return BcryptScheme{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}

// PlainScheme stores the password verbatim and compares in constant time.
type PlainScheme struct{}

func (PlainScheme) Name() string { return SchemePlain }

func (PlainScheme) Encode(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

type BcryptScheme struct {
	Cost int
}

func (BcryptScheme) Name() string { return SchemeBcrypt }

func (s BcryptScheme) Encode(password string) (string, error) {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
