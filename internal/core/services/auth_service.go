package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/config"
	"staffhub/internal/core/domain"
	"staffhub/internal/pkg/encode"
	"staffhub/internal/pkg/password"
	"staffhub/internal/pkg/sessioncache"
	"staffhub/internal/pkg/token"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo  repositories.UserRepository
	resetRepo repositories.ResetTokenRepository
	sessions  *sessioncache.Cache
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	resetRepo repositories.ResetTokenRepository,
	sessions *sessioncache.Cache,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// LoginInput represents login input. Identifier matches username, email
// or contact number.
type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResult represents a successful login
type LoginResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

// ResetRequest represents an initiated password reset. Link carries the
// plaintext token; only its hash is stored.
type ResetRequest struct {
	User *models.PublicUser
	Link string
}

// Login authenticates a user and issues a bearer token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	// 1. Find user by username, email or contact number
	user, err := s.userRepo.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Check account status
	if user.Status == models.StatusInactive {
		return nil, domain.ErrAccountInactive
	}

	// 4. Obfuscate the password-stripped snapshot for the token payload
	snapshot := user.Public()
	encoded, err := encode.Obfuscate(snapshot)
	if err != nil {
		return nil, err
	}

	// 5. Issue signed token
	signed, err := token.Generate(encoded, s.cfg.JWT.Secret, token.Validity)
	if err != nil {
		return nil, err
	}

	// 6. Register the session so logout has an observable effect
	s.sessions.Set(signed, user.ID, token.Validity)

	log.Printf("✅ User logged in: %s", user.Username)

	return &LoginResult{Token: signed, User: snapshot}, nil
}

// VerifyEmail initiates a password reset for the given email. Any prior
// reset record for the user is superseded.
func (s *AuthService) VerifyEmail(ctx context.Context, email string) (*ResetRequest, error) {
	// 1. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// 2. Derive the token value from user id + current time, double
	// base64-encoded. Matches the upstream link format.
	plain := encode.ObfuscateString(fmt.Sprintf("%d%d", user.ID, time.Now().UnixMilli()))

	// 3. Store only the hash, replacing any outstanding record
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, err
	}
	record := &models.ResetToken{UserID: user.ID, TokenHash: hash}
	if err := s.resetRepo.Replace(ctx, record); err != nil {
		return nil, err
	}

	log.Printf("✅ Password reset initiated for: %s", user.Email)

	return &ResetRequest{
		User: user.Public(),
		Link: fmt.Sprintf("%sreset?token=%s&id=%d", s.cfg.FrontEndURL, plain, user.ID),
	}, nil
}

// ResetPassword consumes a reset token and sets a new password. The
// record is deleted only on success, so a wrong token leaves the
// outstanding reset flow intact; a consumed token cannot be reused.
func (s *AuthService) ResetPassword(ctx context.Context, userID uint, plainToken, newPassword string) (*models.PublicUser, error) {
	// 1. Look up the outstanding reset record
	record, err := s.resetRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	// 2. Hash-verify the presented token
	if !password.Verify(plainToken, record.TokenHash) {
		return nil, domain.ErrTokenInvalid
	}

	// 3. Persist the new password
	hashed, err := password.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return nil, err
	}

	// 4. Consume the record
	if err := s.resetRepo.DeleteByUserID(ctx, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Password reset completed for: %s", user.Username)

	return user.Public(), nil
}

// Logout removes the session cache entry for the presented token.
// Idempotent; the signed token itself stays valid until its expiry.
func (s *AuthService) Logout(tokenString string) {
	s.sessions.Remove(tokenString)
	log.Printf("✅ User logged out")
}
