package helpers

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

var dummyHash = sync.OnceValue(func() string {
	h, _ := HashPassword("no-such-account")
	return h
})

// CompareDummyPassword spends the same bcrypt work as a real comparison. Call it
// when no account matches so lookups of unknown emails take as long as real ones.
func CompareDummyPassword(plain string) {
	_ = CompareHashAndPassword(dummyHash(), plain)
}
