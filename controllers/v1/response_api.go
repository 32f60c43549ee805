package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/workflow"
	apimodels "ats-backend/models/api"
	applicationapimodels "ats-backend/models/api/application"
)

// responseApiController serves the email-link endpoints; they are public and
// authenticated only by the per-application response token.
type responseApiController struct {
	controllers.BaseAPIController
}

func InitResponseApiRouters(app *fiber.App) {
	controller := responseApiController{}
	app.Route("/api/v1/response", func(router fiber.Router) {
		router.Post(":token", controller.respond)
	})
}

func (c *responseApiController) respond(ctx *fiber.Ctx) error {
	token := ctx.Params("token")
	if token == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("response token is missing"))
	}
	var payload applicationapimodels.ResponseData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := workflow.Instance.HandleCandidateResponded(token, payload.Response, payload.Feedback)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to record candidate response")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
