package models

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleAdmin is the role required for all financial endpoints.
const RoleAdmin = "admin"

// UserRole assigns a role to a user of the platform.
type UserRole struct {
	DefaultModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:user_role_unique"`
	Role   string    `gorm:"uniqueIndex:user_role_unique"`
}

func (r *UserRole) BeforeSave(_ *gorm.DB) error {
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	return nil
}

// RoleLookup checks user roles in the database.
type RoleLookup struct {
	DB *gorm.DB
}

// HasRole reports whether the user has the role.
func (l RoleLookup) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&UserRole{}).
		Where(&UserRole{UserID: userID, Role: role}).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
