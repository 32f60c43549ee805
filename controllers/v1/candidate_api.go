package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	candidatehandler "ats-backend/lib/candidate"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	candidateapimodels "ats-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("/api/v1/candidate", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRoleRequired())

		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Put("resend_invitation", controller.resendInvitation)
		})
	})
}

func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = candidatehandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load candidate")
	}
	if item == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("candidate not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var filter struct {
		Search string `json:"search"`
	}
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatehandler.Instance.List(filter.Search)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

func (c *candidateApiController) resendInvitation(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := candidatehandler.Instance.ResendPortalInvitation(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to resend portal invitation")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
