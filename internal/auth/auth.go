package auth

import (
	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Hash(pswd string) (string, error)
	Compare(hashed, pswd string) error
}

type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), b.cost)
	return string(bytes), err
}

// Compare returns ErrInvalidCredentials for any mismatch or malformed hash.
func (b *Bcrypt) Compare(hashed, pswd string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pswd)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
