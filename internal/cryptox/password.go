// Package cryptox implements password hashing and verification for user
// credentials. Hashes are bcrypt with a fixed cost; each hash carries its own
// random salt, so hashing the same password twice yields different strings.
package cryptox

import "golang.org/x/crypto/bcrypt"

// BcryptCost is deliberately above bcrypt.DefaultCost. Changing it only
// affects newly created hashes; stored hashes keep the cost they were
// created with.
const BcryptCost = 12

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed hash is not an error condition for the caller: login must not
// crash on corrupt stored data, so any failure simply reports false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
