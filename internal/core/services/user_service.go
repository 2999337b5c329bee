package services

import (
	"context"
	"errors"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/core/domain"
	"staffhub/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles staff management business logic
type UserService struct {
	userRepo repositories.UserRepository
	deptRepo repositories.DepartmentRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	deptRepo repositories.DepartmentRepository,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		deptRepo: deptRepo,
	}
}

// CreateUserInput represents create user input
type CreateUserInput struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	DepartmentID  uint   `json:"department_id"`
}

// UpdateUserInput represents update user input
type UpdateUserInput struct {
	Email         *string `json:"email"`
	ContactNumber *string `json:"contact_number"`
	Role          *string `json:"role"`
	Status        *string `json:"status"`
	DepartmentID  *uint   `json:"department_id"`
}

// ListUsers lists users with pagination and optional search
func (s *UserService) ListUsers(ctx context.Context, offset, limit int, search string) ([]*models.PublicUser, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit, search)
	if err != nil {
		return nil, 0, err
	}

	public := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public, total, nil
}

// GetUser gets a single user by ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.Public(), nil
}

// CreateUser creates a new staff account with an ACTIVE status
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.PublicUser, error) {
	// 1. Validate password
	if !password.ValidatePassword(input.Password) {
		return nil, domain.ErrWeakPassword
	}

	// 2. Check uniqueness of username, email and contact number
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}
	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}
	exists, err = s.userRepo.ExistsByContactNumber(ctx, input.ContactNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateUser
	}

	// 3. Validate department reference
	if input.DepartmentID != 0 {
		if _, err := s.deptRepo.GetByID(ctx, input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrDepartmentNotFound
			}
			return nil, err
		}
	}

	// 4. Hash password
	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = models.RoleStaff
	}

	// 5. Create user
	user := &models.User{
		Username:      input.Username,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		Password:      hashed,
		Role:          role,
		Status:        models.StatusActive,
		DepartmentID:  input.DepartmentID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// UpdateUser updates an existing user
func (s *UserService) UpdateUser(ctx context.Context, id uint, input *UpdateUserInput) (*models.PublicUser, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.ContactNumber != nil {
		user.ContactNumber = *input.ContactNumber
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrDepartmentNotFound
			}
			return nil, err
		}
		user.DepartmentID = *input.DepartmentID
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Public(), nil
}

// DeleteUser soft deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
