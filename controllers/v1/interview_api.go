package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	interviewhandler "ats-backend/lib/interview"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	interviewapimodels "ats-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("/api/v1/interview", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRoleRequired())

		router.Post("", controller.schedule)
		router.Get("by_application/:id", controller.listByApplication)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("reschedule", controller.reschedule)
			idRoute.Put("cancel", controller.cancel)
			idRoute.Put("feedback", controller.feedback)
		})
	})
}

func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ScheduleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	scheduledBy := middleware.GetUserID(ctx)
	id, err := interviewhandler.Instance.Schedule(scheduledBy, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to schedule interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *interviewApiController) reschedule(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.RescheduleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewhandler.Instance.Reschedule(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to reschedule interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *interviewApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewhandler.Instance.Cancel(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to cancel interview")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *interviewApiController) feedback(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload interviewapimodels.FeedbackData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = interviewhandler.Instance.SubmitFeedback(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record interview feedback")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *interviewApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := interviewhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load interview")
	}
	if item == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("interview not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

func (c *interviewApiController) listByApplication(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := interviewhandler.Instance.ListByApplication(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list interviews")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
