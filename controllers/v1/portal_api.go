package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	applicationhandler "ats-backend/lib/application"
	candidatehandler "ats-backend/lib/candidate"
	"ats-backend/lib/offer"
	"ats-backend/lib/portal"
	"ats-backend/lib/workflow"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	portalapimodels "ats-backend/models/api/portal"
)

type portalApiController struct {
	controllers.BaseAPIController
}

func InitPortalApiRouters(app *fiber.App) {
	controller := portalApiController{}
	app.Route("/api/v1/portal", func(router fiber.Router) {
		router.Post("login", controller.login)

		router.Route("", func(authRoute fiber.Router) {
			authRoute.Use(middleware.PortalSessionRequired())
			authRoute.Get("profile", controller.profile)
			authRoute.Get("applications", controller.applications)
			authRoute.Post("logout", controller.logout)
			authRoute.Route("application/:id/offer", func(offerRoute fiber.Router) {
				offerRoute.Get("", controller.offer)
				offerRoute.Put("accept", controller.acceptOffer)
				offerRoute.Put("decline", controller.declineOffer)
			})
		})
	})
}

func (c *portalApiController) login(ctx *fiber.Ctx) error {
	var payload portalapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token, err := portal.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("invalid login or password"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(portalapimodels.SessionResponse{
		SessionToken: token,
	}))
}

func (c *portalApiController) profile(ctx *fiber.Ctx) error {
	candidateID := middleware.GetPortalCandidateID(ctx)
	item, err := candidatehandler.Instance.GetByID(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load profile")
	}
	if item == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("profile not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(portalapimodels.ProfileView{
		FullName: item.FullName,
		Email:    item.Email,
		Phone:    item.Phone,
		Location: item.Location,
		Status:   item.Status,
	}))
}

func (c *portalApiController) applications(ctx *fiber.Ctx) error {
	candidateID := middleware.GetPortalCandidateID(ctx)
	list, err := applicationhandler.Instance.ListByCandidate(candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list applications")
	}
	// the portal view hides recruiter-side fields
	views := make([]portalapimodels.PortalApplicationView, 0, len(list))
	for _, item := range list {
		views = append(views, portalapimodels.PortalApplicationView{
			ID:            item.ID,
			JobTitle:      item.JobTitle,
			JobDepartment: item.JobDepartment,
			Stage:         item.Stage,
			AppliedAt:     item.AppliedAt,
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(views))
}

func (c *portalApiController) logout(ctx *fiber.Ctx) error {
	if err := portal.Instance.Logout(middleware.GetPortalSessionToken(ctx)); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to log out")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// ownApplication rejects access to applications of other candidates.
func (c *portalApiController) ownApplication(ctx *fiber.Ctx) (applicationID string, err error) {
	applicationID, err = c.GetID(ctx)
	if err != nil {
		return "", err
	}
	item, err := applicationhandler.Instance.GetByID(applicationID)
	if err != nil {
		return "", err
	}
	if item == nil || item.CandidateID != middleware.GetPortalCandidateID(ctx) {
		return "", workflow.NotFoundError{Entity: "application", Key: applicationID}
	}
	return applicationID, nil
}

func (c *portalApiController) offer(ctx *fiber.Ctx) error {
	applicationID, err := c.ownApplication(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("application not found"))
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

func (c *portalApiController) acceptOffer(ctx *fiber.Ctx) error {
	applicationID, err := c.ownApplication(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("application not found"))
	}
	if err = offer.Instance.Accept(applicationID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to accept offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *portalApiController) declineOffer(ctx *fiber.Ctx) error {
	applicationID, err := c.ownApplication(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("application not found"))
	}
	if err = offer.Instance.Decline(applicationID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to decline offer")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
