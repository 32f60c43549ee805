package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	applicationhandler "ats-backend/lib/application"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	applicationapimodels "ats-backend/models/api/application"
	dbmodels "ats-backend/models/db"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("/api/v1/application", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRoleRequired())

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Post("export", controller.export)
		router.Put("bulk_change_stage", controller.bulkChangeStage)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("change_stage", controller.changeStage)
			idRoute.Get("history", controller.history)
		})
	})
}

func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicationhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := applicationhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application")
	}
	if item == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("application not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var filter dbmodels.ApplicationFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *applicationApiController) changeStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StageChangeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = applicationhandler.Instance.ChangeStage(id, payload.Stage); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change application stage")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *applicationApiController) bulkChangeStage(ctx *fiber.Ctx) error {
	var payload applicationapimodels.BulkStageData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := applicationhandler.Instance.BulkChangeStage(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to apply bulk stage change")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

func (c *applicationApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load application history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *applicationApiController) export(ctx *fiber.Ctx) error {
	var filter dbmodels.ApplicationFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := applicationhandler.Instance.Export(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export applications")
	}
	fileName := fmt.Sprintf("applications_%v.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
