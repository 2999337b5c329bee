package handlers

import (
	"errors"
	"strings"

	"staffhub/internal/core/domain"
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	mailer      services.Mailer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, mailer services.Mailer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		mailer:      mailer,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// VerifyEmailRequest represents reset initiation request body
type VerifyEmailRequest struct {
	Email string `json:"email"`
}

// ResetRequest represents password reset request body
type ResetRequest struct {
	UserID   uint   `json:"user_id"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Login handles user login
// @Summary Login user
// @Description Authenticate by username, email or contact number and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Identifier == "" {
		return response.BadRequest(c, "Identifier is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.LoginInput{
		Identifier: strings.TrimSpace(req.Identifier),
		Password:   req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, domain.ErrAccountInactive):
			return response.Forbidden(c, "Account is inactive")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	return response.Success(c, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// VerifyEmail initiates a password reset and dispatches the reset link
// @Summary Initiate password reset
// @Description Create a single-use reset token for the account with this email
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body VerifyEmailRequest true "Account email"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	var req VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" {
		return response.BadRequest(c, "Email is required")
	}

	result, err := h.authService.VerifyEmail(c.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User does not exist")
		default:
			return response.InternalServerError(c, "Failed to initiate password reset")
		}
	}

	if err := h.mailer.SendResetPasswordMail(c.Context(), result.User, result.Link); err != nil {
		return response.InternalServerError(c, "Failed to send reset mail")
	}

	return response.Success(c, "Reset link sent", fiber.Map{
		"link": result.Link,
	})
}

// Reset completes a password reset
// @Summary Complete password reset
// @Description Consume the reset token and set a new password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetRequest true "Reset token and new password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/reset [post]
func (h *AuthHandler) Reset(c *fiber.Ctx) error {
	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.UserID == 0 || req.Token == "" {
		return response.BadRequest(c, "User id and token are required")
	}
	if len(req.Password) < 8 {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	user, err := h.authService.ResetPassword(c.Context(), req.UserID, req.Token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenInvalid):
			return response.BadRequest(c, "Invalid or expired token")
		default:
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.Success(c, "Password updated", user)
}

// Logout removes the presented token from the session cache
// @Summary Logout user
// @Description Remove the bearer token from the session cache; idempotent
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		h.authService.Logout(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return response.Success(c, "Logged out", nil)
}
