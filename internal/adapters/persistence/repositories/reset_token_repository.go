package repositories

import (
	"context"
	"time"

	"staffhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// resetTokenRepository implements ResetTokenRepository interface
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Replace deletes any prior record for the user and inserts the new one.
// The transaction plus the unique index on user_id guarantee at most one
// live record per user even under racing initiations.
func (r *resetTokenRepository) Replace(ctx context.Context, token *models.ResetToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", token.UserID).Delete(&models.ResetToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

// GetByUserID gets the outstanding reset record for a user
func (r *resetTokenRepository) GetByUserID(ctx context.Context, userID uint) (*models.ResetToken, error) {
	var token models.ResetToken
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByUserID removes the reset record for a user
func (r *resetTokenRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ResetToken{}).Error
}

// DeleteStale removes reset records created before olderThan
func (r *resetTokenRepository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", olderThan).Delete(&models.ResetToken{})
	return result.RowsAffected, result.Error
}
