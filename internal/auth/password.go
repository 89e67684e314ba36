// SPDX-License-Identifier: MIT
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/config"
)

// hashCost resolves the bcrypt work factor from auth.bcrypt_cost,
// clamped to the range bcrypt accepts
func hashCost() int {
	cost := config.GetInt("auth.bcrypt_cost")
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost())
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword verifies a password against a bcrypt hash using constant-time comparison
func CheckPassword(password, hash string) bool {
	if password == "" {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
