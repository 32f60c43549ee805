package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	companyhandler "ats-backend/lib/company"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("/api/v1/company", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRoleRequired())

		router.Get("profile", controller.get)
		router.Put("profile", controller.save)
	})
}

func (c *companyApiController) get(ctx *fiber.Ctx) error {
	rec, err := companyhandler.Instance.Get()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load company profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

func (c *companyApiController) save(ctx *fiber.Ctx) error {
	var payload companyhandler.ProfileData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := companyhandler.Instance.Save(payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to save company profile")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
