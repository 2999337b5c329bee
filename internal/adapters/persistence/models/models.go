package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleHOD   = "HOD"
	RoleStaff = "STAFF"
)

// Account statuses
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Department represents the departments table
type Department struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Status    string         `gorm:"size:20;default:'ACTIVE'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Department) TableName() string {
	return "departments"
}

// User represents the users table
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Username      string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email         string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	ContactNumber string         `gorm:"uniqueIndex;size:20;not null" json:"contact_number"`
	Password      string         `gorm:"size:255;not null" json:"-"`
	Role          string         `gorm:"size:20;default:'STAFF'" json:"role"`
	Status        string         `gorm:"size:20;default:'ACTIVE'" json:"status"`
	DepartmentID  uint           `gorm:"index" json:"department_id"`
	Department    *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// PublicUser is the outward-facing identity snapshot. It has no password
// field at all; this is the shape embedded in bearer tokens and returned
// by every auth-facing operation.
type PublicUser struct {
	ID            uint        `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	ContactNumber string      `json:"contact_number"`
	Role          string      `json:"role"`
	Status        string      `json:"status"`
	DepartmentID  uint        `json:"department_id"`
	Department    *Department `json:"department,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

// Public strips the credential material from a user record.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		Role:          u.Role,
		Status:        u.Status,
		DepartmentID:  u.DepartmentID,
		Department:    u.Department,
		CreatedAt:     u.CreatedAt,
	}
}

// ResetToken represents the reset_tokens table. At most one record per
// user exists at any time; creating a new one replaces the old record.
// Only the bcrypt hash of the token value is stored.
type ResetToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	TokenHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ResetToken) TableName() string {
	return "reset_tokens"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Department{},
		&User{},
		&ResetToken{},
	)
}
