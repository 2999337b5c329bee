// Package testutil provides in-memory repository doubles shared by the
// service and handler tests.
package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"staffhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// FakeUserRepo is an in-memory UserRepository
type FakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

// NewFakeUserRepo creates an empty fake user repository
func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *FakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *FakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *FakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == identifier || user.Email == identifier || user.ContactNumber == identifier {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *FakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *FakeUserRepo) UpdatePassword(_ context.Context, id uint, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Password = hashedPassword
	return nil
}

func (r *FakeUserRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *FakeUserRepo) List(_ context.Context, offset, limit int, search string) ([]*models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*models.User
	for _, user := range r.users {
		if search == "" || strings.Contains(user.Username, search) || strings.Contains(user.Email, search) {
			clone := *user
			matched = append(matched, &clone)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *FakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeUserRepo) ExistsByContactNumber(_ context.Context, contactNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ContactNumber == contactNumber {
			return true, nil
		}
	}
	return false, nil
}

// FakeResetRepo is an in-memory ResetTokenRepository
type FakeResetRepo struct {
	mu     sync.Mutex
	tokens map[uint]*models.ResetToken
	nextID uint
}

// NewFakeResetRepo creates an empty fake reset token repository
func NewFakeResetRepo() *FakeResetRepo {
	return &FakeResetRepo{tokens: make(map[uint]*models.ResetToken), nextID: 1}
}

func (r *FakeResetRepo) Replace(_ context.Context, token *models.ResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	token.ID = r.nextID
	r.nextID++
	token.CreatedAt = time.Now()
	clone := *token
	r.tokens[token.UserID] = &clone
	return nil
}

func (r *FakeResetRepo) GetByUserID(_ context.Context, userID uint) (*models.ResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *token
	return &clone, nil
}

func (r *FakeResetRepo) DeleteByUserID(_ context.Context, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, userID)
	return nil
}

func (r *FakeResetRepo) DeleteStale(_ context.Context, olderThan time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for userID, token := range r.tokens {
		if token.CreatedAt.Before(olderThan) {
			delete(r.tokens, userID)
			deleted++
		}
	}
	return deleted, nil
}

// Count reports the number of outstanding reset records
func (r *FakeResetRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

// FakeDeptRepo is an in-memory DepartmentRepository
type FakeDeptRepo struct {
	mu    sync.Mutex
	depts map[uint]*models.Department
}

// NewFakeDeptRepo creates a fake department repository with the given departments
func NewFakeDeptRepo(depts ...*models.Department) *FakeDeptRepo {
	r := &FakeDeptRepo{depts: make(map[uint]*models.Department)}
	for _, d := range depts {
		r.depts[d.ID] = d
	}
	return r
}

func (r *FakeDeptRepo) GetByID(_ context.Context, id uint) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dept, ok := r.depts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *dept
	return &clone, nil
}

func (r *FakeDeptRepo) List(_ context.Context) ([]*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Department, 0, len(r.depts))
	for _, d := range r.depts {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}
