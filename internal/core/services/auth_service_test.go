package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/config"
	"staffhub/internal/core/domain"
	"staffhub/internal/pkg/encode"
	"staffhub/internal/pkg/password"
	"staffhub/internal/pkg/sessioncache"
	"staffhub/internal/pkg/token"
	"staffhub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "auth-service-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		AppMode:     "dev",
		FrontEndURL: "http://localhost:4200/",
		JWT:         config.JWTConfig{Secret: testSecret},
	}
}

type authFixture struct {
	users    *testutil.FakeUserRepo
	resets   *testutil.FakeResetRepo
	sessions *sessioncache.Cache
	svc      *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    testutil.NewFakeUserRepo(),
		resets:   testutil.NewFakeResetRepo(),
		sessions: sessioncache.New(),
	}
	f.svc = NewAuthService(f.users, f.resets, f.sessions, testConfig())
	return f
}

func (f *authFixture) seedUser(t *testing.T, username, email, contact, plainPassword, role, status string) *models.User {
	t.Helper()
	hashed, err := password.Hash(plainPassword)
	require.NoError(t, err)
	user := &models.User{
		Username:      username,
		Email:         email,
		ContactNumber: contact,
		Password:      hashed,
		Role:          role,
		Status:        status,
		DepartmentID:  1,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func linkToken(t *testing.T, link string) string {
	t.Helper()
	_, rest, found := strings.Cut(link, "token=")
	require.True(t, found, "link %q has no token parameter", link)
	tok, _, _ := strings.Cut(rest, "&id=")
	return tok
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	f := newAuthFixture(t)
	seeded := f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "s3cret-pass", models.RoleStaff, models.StatusActive)

	for _, identifier := range []string{"jdoe", "jdoe@example.com", "0812345678"} {
		result, err := f.svc.Login(context.Background(), &LoginInput{Identifier: identifier, Password: "s3cret-pass"})
		require.NoError(t, err, "login by %q", identifier)
		require.NotEmpty(t, result.Token)

		claims, err := token.Validate(result.Token, testSecret)
		require.NoError(t, err)

		var snapshot models.PublicUser
		require.NoError(t, encode.Deobfuscate(claims.User, &snapshot))
		assert.Equal(t, seeded.ID, snapshot.ID)
		assert.Equal(t, models.RoleStaff, snapshot.Role)
		assert.Equal(t, models.StatusActive, snapshot.Status)

		// The decoded payload must not carry credential material
		raw, err := encode.DeobfuscateString(claims.User)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToLower(raw), "password")

		userID, ok := f.sessions.Get(result.Token)
		assert.True(t, ok)
		assert.Equal(t, seeded.ID, userID)
	}
}

func TestLoginResponseOmitsPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "s3cret-pass", models.RoleStaff, models.StatusActive)

	result, err := f.svc.Login(context.Background(), &LoginInput{Identifier: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	body, err := json.Marshal(result.User)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(body)), "password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "s3cret-pass", models.RoleStaff, models.StatusActive)

	_, err := f.svc.Login(context.Background(), &LoginInput{Identifier: "jdoe", Password: "wrong-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), &LoginInput{Identifier: "nobody", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginInactiveAccountNeverIssuesToken(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "s3cret-pass", models.RoleAdmin, models.StatusInactive)

	result, err := f.svc.Login(context.Background(), &LoginInput{Identifier: "jdoe", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
	assert.Nil(t, result)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestVerifyEmailUnknownUser(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.VerifyEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, f.resets.Count())
}

func TestVerifyEmailSupersedesPriorRecord(t *testing.T) {
	f := newAuthFixture(t)
	seeded := f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "s3cret-pass", models.RoleStaff, models.StatusActive)

	first, err := f.svc.VerifyEmail(context.Background(), "jdoe@example.com")
	require.NoError(t, err)
	second, err := f.svc.VerifyEmail(context.Background(), "jdoe@example.com")
	require.NoError(t, err)

	// Exactly one outstanding record; only the second token is live
	assert.Equal(t, 1, f.resets.Count())
	_, err = f.svc.ResetPassword(context.Background(), seeded.ID, linkToken(t, first.Link), "new-password-1")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	_, err = f.svc.ResetPassword(context.Background(), seeded.ID, linkToken(t, second.Link), "new-password-1")
	assert.NoError(t, err)
}

func TestResetPasswordConsumesTokenExactlyOnce(t *testing.T) {
	f := newAuthFixture(t)
	seeded := f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "old-password", models.RoleStaff, models.StatusActive)

	initiated, err := f.svc.VerifyEmail(context.Background(), "jdoe@example.com")
	require.NoError(t, err)
	plain := linkToken(t, initiated.Link)

	user, err := f.svc.ResetPassword(context.Background(), seeded.ID, plain, "new-password-1")
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)
	assert.Equal(t, 0, f.resets.Count())

	// New password works, old does not
	_, err = f.svc.Login(context.Background(), &LoginInput{Identifier: "jdoe", Password: "new-password-1"})
	assert.NoError(t, err)
	_, err = f.svc.Login(context.Background(), &LoginInput{Identifier: "jdoe", Password: "old-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Second consumption fails
	_, err = f.svc.ResetPassword(context.Background(), seeded.ID, plain, "new-password-2")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResetPasswordWrongTokenLeavesRecord(t *testing.T) {
	f := newAuthFixture(t)
	seeded := f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "old-password", models.RoleStaff, models.StatusActive)

	initiated, err := f.svc.VerifyEmail(context.Background(), "jdoe@example.com")
	require.NoError(t, err)

	_, err = f.svc.ResetPassword(context.Background(), seeded.ID, "bogus-token", "new-password-1")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	assert.Equal(t, 1, f.resets.Count())

	// The genuine token still works afterwards
	_, err = f.svc.ResetPassword(context.Background(), seeded.ID, linkToken(t, initiated.Link), "new-password-1")
	assert.NoError(t, err)
}

func TestResetPasswordNoOutstandingRecord(t *testing.T) {
	f := newAuthFixture(t)
	seeded := f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "old-password", models.RoleStaff, models.StatusActive)

	_, err := f.svc.ResetPassword(context.Background(), seeded.ID, "any-token", "new-password-1")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestLogoutRemovesSessionAndIsIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "jdoe", "jdoe@example.com", "0812345678", "s3cret-pass", models.RoleStaff, models.StatusActive)

	result, err := f.svc.Login(context.Background(), &LoginInput{Identifier: "jdoe", Password: "s3cret-pass"})
	require.NoError(t, err)

	f.svc.Logout(result.Token)
	_, ok := f.sessions.Get(result.Token)
	assert.False(t, ok)

	// Logout of an absent token is a no-op
	f.svc.Logout(result.Token)
	f.svc.Logout("never-issued")

	// The signed token itself stays verifiable until expiry
	_, err = token.Validate(result.Token, testSecret)
	assert.NoError(t, err)
}
