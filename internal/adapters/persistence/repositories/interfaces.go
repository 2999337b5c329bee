package repositories

import (
	"context"
	"time"

	"staffhub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByIdentifier matches username OR email OR contact number,
	// preloading the department reference.
	GetByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int, search string) ([]*models.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByContactNumber(ctx context.Context, contactNumber string) (bool, error)
}

// ResetTokenRepository defines reset token repository interface
type ResetTokenRepository interface {
	// Replace deletes any existing record for token.UserID and inserts
	// token in one transaction, so at most one record per user survives
	// racing reset initiations.
	Replace(ctx context.Context, token *models.ResetToken) error
	GetByUserID(ctx context.Context, userID uint) (*models.ResetToken, error)
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)
}

// DepartmentRepository defines department repository interface
type DepartmentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Department, error)
	List(ctx context.Context) ([]*models.Department, error)
}
