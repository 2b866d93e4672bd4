// Package passwords hashes user passwords with bcrypt.
package passwords

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const cost = 10

func Hash(password string) (string, error) {
	const op = "lib.passwords.Hash"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: Creating password hash error: %w", op, err)
	}

	return string(hash), nil
}

// Compare reports whether password matches hash.
func Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
