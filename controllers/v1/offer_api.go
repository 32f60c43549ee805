package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/offer"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
)

type offerApiController struct {
	controllers.BaseAPIController
}

func InitOfferApiRouters(app *fiber.App) {
	controller := offerApiController{}
	app.Route("/api/v1/offer", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RecruiterRoleRequired())

		// the offer is addressed by its application
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Post("release", controller.release)
			idRoute.Get("", controller.get)
			idRoute.Get("pdf", controller.pdf)
			idRoute.Put("accept", controller.accept)
			idRoute.Put("decline", controller.decline)
		})
	})
}

func (c *offerApiController) release(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload offer.ReleaseRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := offer.Instance.Release(applicationID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to release offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

func (c *offerApiController) get(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := offer.Instance.GetByApplication(applicationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load offer")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("offer not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

func (c *offerApiController) pdf(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	pdfFile, err := offer.Instance.GetPDF(applicationID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load offer pdf")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="offer_%v.pdf"`, applicationID))
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

func (c *offerApiController) accept(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = offer.Instance.Accept(applicationID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to accept offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *offerApiController) decline(ctx *fiber.Ctx) error {
	applicationID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = offer.Instance.Decline(applicationID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to decline offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
