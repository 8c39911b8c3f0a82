package hasher

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Cost is fixed so stored hashes stay comparable across replicas.
const Cost = bcrypt.DefaultCost

// MaxPasswordBytes is the longest input bcrypt accepts. Longer passwords
// fail Hash with bcrypt.ErrPasswordTooLong.
const MaxPasswordBytes = 72

type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

type Bcrypt struct {
	cost int
}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: Cost}
}

/*
* Generate a bcrypt hash based on the password given
 */
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", errors.New("empty password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

/*
* A missing stored hash never verifies
* Mismatch and malformed hashes both report false
 */
func (b *Bcrypt) Verify(plaintext, hashed string) bool {
	if strings.TrimSpace(hashed) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
