package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jmadeiros/stmartinsapp-sub001/internal/domain"
	"github.com/jmadeiros/stmartinsapp-sub001/internal/service/auth"
)

const (
	UserContextKey   = "user"
	UserIDContextKey = "user_id"
)

func AuthRequired(authService auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Unauthorized("Missing authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return Unauthorized("Invalid authorization header format")
		}

		claims, err := authService.ValidateAccessToken(parts[1])
		if err != nil {
			return Unauthorized("Invalid or expired token")
		}

		profile, err := authService.GetProfile(c.UserContext(), claims.UserID)
		if errors.Is(err, domain.ErrProfileNotFound) {
			return Unauthorized("User not found")
		}
		if err != nil {
			return err
		}

		c.Locals(UserContextKey, profile)
		c.Locals(UserIDContextKey, profile.UserID)

		return c.Next()
	}
}

func GetCurrentUser(c *fiber.Ctx) *domain.Profile {
	profile, ok := c.Locals(UserContextKey).(*domain.Profile)
	if !ok {
		return nil
	}
	return profile
}

func GetUserID(c *fiber.Ctx) uuid.UUID {
	userID, ok := c.Locals(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func GetIPAddress(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.IP()
}

func GetUserAgentFromContext(c *fiber.Ctx) string {
	return c.Get(fiber.HeaderUserAgent)
}

// RequestInfo captures the caller's network details for audited operations.
func RequestInfo(c *fiber.Ctx) *domain.RequestMeta {
	return &domain.RequestMeta{
		IPAddress: GetIPAddress(c),
		UserAgent: GetUserAgentFromContext(c),
	}
}
