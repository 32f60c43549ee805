package apiv1

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ats-backend/config"
	"ats-backend/controllers"
	authutils "ats-backend/lib/utils/auth-utils"
	apimodels "ats-backend/models/api"
	authapimodels "ats-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("/api/v1/auth", func(router fiber.Router) {
		router.Post("login", controller.login)
	})
}

func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	emailOk := strings.EqualFold(payload.Email, config.Conf.Auth.RecruiterEmail)
	passOk := subtle.ConstantTimeCompare([]byte(payload.Password), []byte(config.Conf.Auth.RecruiterPassword)) == 1
	if !emailOk || !passOk {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid login or password"))
	}
	token, err := authutils.GetToken(config.Conf.Auth.RecruiterEmail, "Recruiter", authutils.RoleRecruiter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to issue access token")
	}
	refresh, err := authutils.GetRefreshToken(config.Conf.Auth.RecruiterEmail, "Recruiter")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to issue refresh token")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(authapimodels.TokenResponse{
		AccessToken:  token,
		RefreshToken: refresh,
	}))
}
