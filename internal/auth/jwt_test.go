// SPDX-License-Identifier: MIT
package auth

import (
	"testing"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

func TestGenerateToken(t *testing.T) {
	user := &models.User{
		ID:    1,
		Email: "admin@bushtechs.com",
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}

	// Token should have 3 parts separated by dots
	if len(token) < 100 {
		t.Error("JWT token should be longer")
	}
}

func TestValidateTokenValid(t *testing.T) {
	user := &models.User{
		ID:    7,
		Email: "admin@bushtechs.com",
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("Expected UserID %d, got %d", user.ID, claims.UserID)
	}

	if claims.Email != user.Email {
		t.Errorf("Expected Email %s, got %s", user.Email, claims.Email)
	}
}

func TestValidateTokenEmpty(t *testing.T) {
	if _, err := ValidateToken(""); err == nil {
		t.Error("Expected error for empty token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}
