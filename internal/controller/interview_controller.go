package controller

import (
	"io"

	"interview-assistant-be/internal/dto"
	"interview-assistant-be/internal/pkg/serverutils"
	"interview-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Capabilities(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
	UploadResume(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
	Listen(ctx *fiber.Ctx) error
}

type interviewController struct {
	service service.IInterviewService
}

func NewInterviewController(service service.IInterviewService) IInterviewController {
	return &interviewController{service: service}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Get("/capabilities", c.Capabilities)
	h.Post("/session", c.CreateSession)
	h.Get("/session/:id", c.ShowSession)
	h.Post("/session/:id/resume", c.UploadResume)
	h.Post("/session/:id/ask", c.Ask)
	h.Post("/session/:id/listen", c.Listen)
}

func (c *interviewController) Capabilities(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get capabilities", c.service.Capabilities()))
}

func (c *interviewController) CreateSession(ctx *fiber.Ctx) error {
	res, err := c.service.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *interviewController) ShowSession(ctx *fiber.Ctx) error {
	res, err := c.service.ShowSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *interviewController) UploadResume(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		return serverutils.NewInvalidRequest("missing multipart file field 'resume'")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return serverutils.NewInvalidRequest("could not open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return serverutils.NewInvalidRequest("could not read uploaded file")
	}

	res, err := c.service.UploadResume(ctx.Context(), ctx.Params("id"), fileHeader.Filename, data)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success upload resume", res))
}

func (c *interviewController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInvalidRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ask(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate answer", res))
}

func (c *interviewController) Listen(ctx *fiber.Ctx) error {
	res, err := c.service.Listen(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate answer", res))
}
