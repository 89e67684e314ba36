package users

import (
	"fmt"
	"strings"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/auth"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
	"gorm.io/gorm"
)

// CreateUser creates a new admin user with hashed password
// If a soft-deleted user exists with this email, it will be restored
func CreateUser(db *gorm.DB, email, name, password string) (*models.User, error) {
	// Normalize email to lowercase
	email = strings.ToLower(strings.TrimSpace(email))

	// Check if active user already exists
	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		return nil, fmt.Errorf("user with email %s already exists", email)
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Check for soft-deleted user with this email
	var deletedUser models.User
	deletedResult := db.Unscoped().Where("email = ? AND deleted_at IS NOT NULL", email).First(&deletedUser)

	var user *models.User
	if deletedResult.Error == nil {
		// Found a soft-deleted user - restore them with new password
		user = &deletedUser
		if err := db.Unscoped().Model(user).Updates(map[string]interface{}{
			"deleted_at":    nil,
			"name":          name,
			"password_hash": hashedPassword,
		}).Error; err != nil {
			return nil, fmt.Errorf("failed to restore user: %w", err)
		}
	} else {
		// No deleted user found - create new user
		user = &models.User{
			Email:        email,
			Name:         name,
			PasswordHash: hashedPassword,
		}

		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	// Normalize email to lowercase
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	result := db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("user not found: %w", result.Error)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	result := db.First(&user, id)
	if result.Error != nil {
		return nil, fmt.Errorf("user not found: %w", result.Error)
	}
	return &user, nil
}

// ListUsers returns all users
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	result := db.Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list users: %w", result.Error)
	}
	return users, nil
}

// DeleteUser soft-deletes a user
func DeleteUser(db *gorm.DB, id uint) error {
	result := db.Delete(&models.User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}

// ValidatePassword checks if a password matches the user's hash
func ValidatePassword(user *models.User, password string) error {
	if !auth.CheckPassword(password, user.PasswordHash) {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// ChangePassword verifies the current password and stores a new hash
func ChangePassword(db *gorm.DB, userID uint, currentPassword, newPassword string) error {
	user, err := GetUserByID(db, userID)
	if err != nil {
		return err
	}

	if err := ValidatePassword(user, currentPassword); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := db.Model(user).Update("password_hash", hashedPassword).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// SetPicture updates the stored profile image path for a user
func SetPicture(db *gorm.DB, userID uint, imagePath string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("image_path", imagePath)
	if result.Error != nil {
		return fmt.Errorf("failed to update picture: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
