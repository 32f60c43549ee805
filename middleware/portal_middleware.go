package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"ats-backend/lib/portal"
	apimodels "ats-backend/models/api"
)

const candidateIDKey = "portal_candidate_id"

// PortalSessionRequired resolves the opaque session token from the
// Authorization header and stores the candidate id in locals.
func PortalSessionRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := strings.TrimPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer ")
		if token == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session token is missing"))
		}
		candidateID, err := portal.Instance.ValidateSession(token)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("session is invalid or expired"))
		}
		ctx.Locals(candidateIDKey, candidateID)
		return ctx.Next()
	}
}

func GetPortalCandidateID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(candidateIDKey).(string); ok {
		return id
	}
	return ""
}

func GetPortalSessionToken(ctx *fiber.Ctx) string {
	return strings.TrimPrefix(ctx.Get(fiber.HeaderAuthorization), "Bearer ")
}
