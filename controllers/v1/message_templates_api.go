package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/notify"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
)

type messageTemplateApiController struct {
	controllers.BaseAPIController
}

func InitMessageTemplateApiRouters(app *fiber.App) {
	controller := messageTemplateApiController{}
	app.Route("/api/v1/message_template", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRoleRequired())

		router.Get("list", controller.list)
		router.Put(":key", controller.update)
	})
}

func (c *messageTemplateApiController) list(ctx *fiber.Ctx) error {
	list, err := notify.Instance.ListTemplates()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list message templates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *messageTemplateApiController) update(ctx *fiber.Ctx) error {
	key := ctx.Params("key")
	if key == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("template key is missing"))
	}
	var payload notify.TemplateUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notify.Instance.UpdateTemplate(key, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update message template")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
