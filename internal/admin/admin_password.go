package admin

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes with a fresh salt per call and reports the salt
// separately so it can be stored next to the hash.
type PasswordHasher interface {
	Hash(password string) (hash, salt string, err error)
	Compare(hash, password string) error
}

type bcryptHasher struct {
	cost int
}

func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", "", err
	}
	return string(hashed), saltOf(string(hashed)), nil
}

func (h *bcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// saltOf extracts the 22-char salt from a "$2a$10$<salt><digest>" hash.
func saltOf(hash string) string {
	if len(hash) < 29 {
		return ""
	}
	return hash[7:29]
}
