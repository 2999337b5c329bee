package middleware

import (
	"strings"

	"staffhub/internal/adapters/persistence/models"
	"staffhub/internal/config"
	"staffhub/internal/pkg/encode"
	"staffhub/internal/pkg/response"
	"staffhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// userKey is the Locals key the identity snapshot is stored under
const userKey = "user"

// Auth gates a route behind a verified bearer token. When roles are
// given, the identity's role must be one of them. The session cache is
// not consulted here: a logged-out token stays valid until its own
// expiry, matching the upstream contract.
func Auth(cfg *config.Config, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Extract bearer token
		accessToken := bearerToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 2. Verify signature and expiration
		claims, err := token.Validate(accessToken, cfg.JWT.Secret)
		if err != nil {
			return response.Unauthorized(c, "Session expired, please login again")
		}

		// 3. Extract the identity snapshot from the payload
		var user models.PublicUser
		if err := encode.Deobfuscate(claims.User, &user); err != nil {
			return response.Unauthorized(c, "Session expired, please login again")
		}
		c.Locals(userKey, &user)

		// 4. Reject inactive accounts
		if user.Status != models.StatusActive {
			return response.Unauthorized(c, "Account is inactive")
		}

		// 5. Role check
		if len(roles) > 0 && !roleAllowed(user.Role, roles) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}

		return c.Next()
	}
}

// CurrentUser returns the identity attached by Auth, or nil outside a
// protected route.
func CurrentUser(c *fiber.Ctx) *models.PublicUser {
	user, _ := c.Locals(userKey).(*models.PublicUser)
	return user
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func roleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}
